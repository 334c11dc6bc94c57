package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jjtimmons/jst/internal/breakpoint"
	"github.com/jjtimmons/jst/internal/variant"
)

// loadRecords is this module's own minimal text format for a source
// sequence plus its variants, used by `jst index`. Real VCF/FASTA
// parsing is explicitly out of scope (spec.md's ingestion Non-goal);
// this exists only so the CLI has something concrete to build a tree
// from.
//
//	>source
//	ACGTACGT...
//	#variants domain=<N>
//	lo hi alt coverage-bits
//	...
//
// coverage-bits is a string of '0'/'1' characters, one per sequence in
// the domain (e.g. "101" means sequences 0 and 2 carry the variant).
func loadRecords(path string) (string, *variant.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	if !sc.Scan() || strings.TrimSpace(sc.Text()) != ">source" {
		return "", nil, fmt.Errorf("%q: expected '>source' header", path)
	}
	if !sc.Scan() {
		return "", nil, fmt.Errorf("%q: missing source sequence line", path)
	}
	src := strings.TrimSpace(sc.Text())

	if !sc.Scan() {
		return src, variant.NewStore(0), nil
	}
	header := strings.TrimSpace(sc.Text())
	domain, err := parseDomainHeader(header)
	if err != nil {
		return "", nil, fmt.Errorf("%q: %w", path, err)
	}
	store := variant.NewStore(domain)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return "", nil, fmt.Errorf("%q: malformed variant line %q", path, line)
		}
		lo, err := strconv.Atoi(fields[0])
		if err != nil {
			return "", nil, fmt.Errorf("%q: bad lo in %q: %w", path, line, err)
		}
		hi, err := strconv.Atoi(fields[1])
		if err != nil {
			return "", nil, fmt.Errorf("%q: bad hi in %q: %w", path, line, err)
		}
		alt := fields[2]
		if alt == "-" {
			alt = ""
		}
		cov, err := parseCoverageBits(fields[3], domain)
		if err != nil {
			return "", nil, fmt.Errorf("%q: %w", path, err)
		}
		bp, err := breakpoint.New(lo, hi)
		if err != nil {
			return "", nil, fmt.Errorf("%q: %w", path, err)
		}
		v, err := variant.New(bp, alt, cov)
		if err != nil {
			return "", nil, fmt.Errorf("%q: %w", path, err)
		}
		if err := store.Insert(v); err != nil {
			return "", nil, fmt.Errorf("%q: %w", path, err)
		}
	}
	if err := sc.Err(); err != nil {
		return "", nil, fmt.Errorf("%q: %w", path, err)
	}
	return src, store, nil
}

func parseDomainHeader(header string) (int, error) {
	const prefix = "#variants domain="
	if !strings.HasPrefix(header, prefix) {
		return 0, fmt.Errorf("expected %q header, got %q", prefix, header)
	}
	return strconv.Atoi(strings.TrimPrefix(header, prefix))
}

func parseCoverageBits(bits string, domain int) (breakpoint.Coverage, error) {
	if len(bits) != domain {
		return breakpoint.Coverage{}, fmt.Errorf("coverage %q has %d bits, want %d", bits, len(bits), domain)
	}
	cov := breakpoint.NewCoverage(domain)
	for i, b := range bits {
		switch b {
		case '1':
			cov.Set(i)
		case '0':
		default:
			return breakpoint.Coverage{}, fmt.Errorf("coverage %q has non 0/1 character %q", bits, b)
		}
	}
	return cov, nil
}
