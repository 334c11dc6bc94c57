// Package container implements the JST binary container format
// (spec.md §7): a source sequence plus its variant store, serialized so
// a later process can reload a journaled sequence tree without
// re-parsing whatever produced the variants in the first place.
//
// The framing follows the length-prefixed, CRC-guarded record style
// used by crs.Journal's WAL entries: a fixed header, a payload, and an
// IEEE CRC32 trailer computed over the payload.
package container

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/jjtimmons/jst/internal/breakpoint"
	"github.com/jjtimmons/jst/internal/jsterr"
	"github.com/jjtimmons/jst/internal/variant"
)

// magic identifies a JST container file; version lets future additions
// (e.g. a different coverage packing) detect old readers cleanly.
const (
	magic   uint32 = 0x4a535401 // "JST" + format byte 1
	version uint32 = 1
)

// Write serializes src and every variant in store to w, in the order:
//
//	magic, version
//	domain size (sequence count)
//	source length, source bytes
//	variant count
//	for each variant: lo, hi, alt length, alt bytes, coverage bytes
//	CRC32 (IEEE) of everything written after the magic/version header
func Write(w io.Writer, src string, store *variant.Store) error {
	bw := bufio.NewWriter(w)
	crc := crc32.NewIEEE()
	tee := io.MultiWriter(bw, crc)

	if err := binary.Write(bw, binary.BigEndian, magic); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.BigEndian, version); err != nil {
		return err
	}

	if err := writeUint64(tee, uint64(store.DomainSize())); err != nil {
		return err
	}
	if err := writeUint64(tee, uint64(len(src))); err != nil {
		return err
	}
	if _, err := tee.Write([]byte(src)); err != nil {
		return err
	}

	variants := store.All()
	if err := writeUint64(tee, uint64(len(variants))); err != nil {
		return err
	}
	for _, v := range variants {
		if err := writeUint64(tee, uint64(v.BP.Lo)); err != nil {
			return err
		}
		if err := writeUint64(tee, uint64(v.BP.Hi)); err != nil {
			return err
		}
		if err := writeUint64(tee, uint64(len(v.Alt))); err != nil {
			return err
		}
		if _, err := tee.Write([]byte(v.Alt)); err != nil {
			return err
		}
		if _, err := tee.Write(v.Cov.Bytes()); err != nil {
			return err
		}
	}

	if err := binary.Write(bw, binary.BigEndian, crc.Sum32()); err != nil {
		return err
	}
	return bw.Flush()
}

// Read deserializes a container written by Write, verifying the CRC32
// trailer before returning the reconstructed source and variant store.
func Read(r io.Reader) (string, *variant.Store, error) {
	br := bufio.NewReader(r)
	crc := crc32.NewIEEE()
	tee := io.TeeReader(br, crc)

	var gotMagic, gotVersion uint32
	if err := binary.Read(br, binary.BigEndian, &gotMagic); err != nil {
		return "", nil, fmt.Errorf("%w: reading magic: %v", jsterr.ErrMalformedContainer, err)
	}
	if gotMagic != magic {
		return "", nil, fmt.Errorf("%w: bad magic %#x", jsterr.ErrMalformedContainer, gotMagic)
	}
	if err := binary.Read(br, binary.BigEndian, &gotVersion); err != nil {
		return "", nil, fmt.Errorf("%w: reading version: %v", jsterr.ErrMalformedContainer, err)
	}
	if gotVersion != version {
		return "", nil, fmt.Errorf("%w: unsupported version %d", jsterr.ErrMalformedContainer, gotVersion)
	}

	domain, err := readUint64(tee)
	if err != nil {
		return "", nil, fmt.Errorf("%w: reading domain: %v", jsterr.ErrMalformedContainer, err)
	}
	srcLen, err := readUint64(tee)
	if err != nil {
		return "", nil, fmt.Errorf("%w: reading source length: %v", jsterr.ErrMalformedContainer, err)
	}
	srcBuf := make([]byte, srcLen)
	if _, err := io.ReadFull(tee, srcBuf); err != nil {
		return "", nil, fmt.Errorf("%w: reading source: %v", jsterr.ErrMalformedContainer, err)
	}
	src := string(srcBuf)

	covWidth := len(breakpoint.NewCoverage(int(domain)).Bytes())

	variantCount, err := readUint64(tee)
	if err != nil {
		return "", nil, fmt.Errorf("%w: reading variant count: %v", jsterr.ErrMalformedContainer, err)
	}
	store := variant.NewStore(int(domain))
	for i := uint64(0); i < variantCount; i++ {
		lo, err := readUint64(tee)
		if err != nil {
			return "", nil, fmt.Errorf("%w: reading variant %d lo: %v", jsterr.ErrMalformedContainer, i, err)
		}
		hi, err := readUint64(tee)
		if err != nil {
			return "", nil, fmt.Errorf("%w: reading variant %d hi: %v", jsterr.ErrMalformedContainer, i, err)
		}
		altLen, err := readUint64(tee)
		if err != nil {
			return "", nil, fmt.Errorf("%w: reading variant %d alt length: %v", jsterr.ErrMalformedContainer, i, err)
		}
		altBuf := make([]byte, altLen)
		if _, err := io.ReadFull(tee, altBuf); err != nil {
			return "", nil, fmt.Errorf("%w: reading variant %d alt: %v", jsterr.ErrMalformedContainer, i, err)
		}
		covBuf := make([]byte, covWidth)
		if _, err := io.ReadFull(tee, covBuf); err != nil {
			return "", nil, fmt.Errorf("%w: reading variant %d coverage: %v", jsterr.ErrMalformedContainer, i, err)
		}
		cov, err := breakpoint.CoverageFromBytes(int(domain), covBuf)
		if err != nil {
			return "", nil, err
		}
		bp, err := breakpoint.New(int(lo), int(hi))
		if err != nil {
			return "", nil, fmt.Errorf("%w: variant %d: %v", jsterr.ErrMalformedContainer, i, err)
		}
		v, err := variant.New(bp, string(altBuf), cov)
		if err != nil {
			return "", nil, fmt.Errorf("%w: variant %d: %v", jsterr.ErrMalformedContainer, i, err)
		}
		if err := store.Insert(v); err != nil {
			return "", nil, fmt.Errorf("%w: variant %d: %v", jsterr.ErrMalformedContainer, i, err)
		}
	}

	wantCRC := crc.Sum32()
	var gotCRC uint32
	if err := binary.Read(br, binary.BigEndian, &gotCRC); err != nil {
		return "", nil, fmt.Errorf("%w: reading checksum: %v", jsterr.ErrMalformedContainer, err)
	}
	if gotCRC != wantCRC {
		return "", nil, fmt.Errorf("%w: checksum mismatch (want %#x, got %#x)", jsterr.ErrMalformedContainer, wantCRC, gotCRC)
	}

	return src, store, nil
}

func writeUint64(w io.Writer, v uint64) error {
	return binary.Write(w, binary.BigEndian, v)
}

func readUint64(r io.Reader) (uint64, error) {
	var v uint64
	err := binary.Read(r, binary.BigEndian, &v)
	return v, err
}
