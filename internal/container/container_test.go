package container

import (
	"bytes"
	"testing"

	"github.com/jjtimmons/jst/internal/breakpoint"
	"github.com/jjtimmons/jst/internal/variant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	src := "ACGTACGTAC"
	store := variant.NewStore(3)
	v1, err := variant.New(breakpoint.Breakpoint{Lo: 2, Hi: 3}, "N", breakpoint.NewCoverageFromBits(1, 0, 1))
	require.NoError(t, err)
	v2, err := variant.New(breakpoint.Breakpoint{Lo: 5, Hi: 5}, "GG", breakpoint.NewCoverageFromBits(0, 1, 0))
	require.NoError(t, err)
	require.NoError(t, store.Insert(v1))
	require.NoError(t, store.Insert(v2))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, src, store))

	gotSrc, gotStore, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, src, gotSrc)
	assert.Equal(t, store.DomainSize(), gotStore.DomainSize())
	require.Equal(t, store.Len(), gotStore.Len())
	for i, want := range store.All() {
		got := gotStore.All()[i]
		assert.Equal(t, want.BP, got.BP)
		assert.Equal(t, want.Alt, got.Alt)
		assert.True(t, want.Cov.Equal(got.Cov))
	}
}

func TestReadRejectsBadMagic(t *testing.T) {
	_, _, err := Read(bytes.NewReader([]byte{0, 0, 0, 0, 0, 0, 0, 1}))
	require.Error(t, err)
}

func TestReadRejectsTruncatedPayload(t *testing.T) {
	src := "ACGT"
	store := variant.NewStore(1)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, src, store))

	truncated := buf.Bytes()[:buf.Len()-4]
	_, _, err := Read(bytes.NewReader(truncated))
	require.Error(t, err)
}

func TestReadRejectsCorruptedChecksum(t *testing.T) {
	src := "ACGT"
	store := variant.NewStore(1)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, src, store))

	corrupted := buf.Bytes()
	corrupted[len(corrupted)-1] ^= 0xFF
	_, _, err := Read(bytes.NewReader(corrupted))
	require.Error(t, err)
}

func TestRoundTripEmptyStore(t *testing.T) {
	src := "AAAA"
	store := variant.NewStore(4)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, src, store))

	gotSrc, gotStore, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, src, gotSrc)
	assert.Equal(t, 0, gotStore.Len())
	assert.Equal(t, 4, gotStore.DomainSize())
}
