// Package trace reads a line-oriented memory access trace and yields the
// (address, PC, access type) tuples a cmd/llcsim driver feeds into host.Cache.
// Adapted from the teacher's LC-3 image loader (internal/lc3's ReadImage):
// the same "open a file, scan it, surface parse errors with enough context
// to find the bad line" shape, rewritten for a text trace instead of a
// big-endian binary image.
package trace

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"llcsim/internal/replacement"
)

// Access is one decoded line of a trace file: a physical address and the PC
// that issued it, plus an opaque access type threaded through to the engine
// unchanged.
type Access struct {
	Addr       uint64
	PC         uint64
	AccessType replacement.AccessType
}

// Reader streams Access values from an underlying line-oriented source.
type Reader struct {
	scanner *bufio.Scanner
	line    int
	path    string
	closer  io.Closer
}

// Open opens path and returns a Reader over it. The caller must call Close.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "trace: open %q", path)
	}
	return &Reader{scanner: bufio.NewScanner(f), path: path, closer: f}, nil
}

// NewReader wraps an already-open source (e.g. stdin, or a bytes.Reader in
// tests) that the caller remains responsible for closing.
func NewReader(r io.Reader, path string) *Reader {
	return &Reader{scanner: bufio.NewScanner(r), path: path}
}

// Close releases the underlying file, if Open created one.
func (r *Reader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// Next reads the next trace entry. It returns io.EOF once the source is
// exhausted. Blank lines and lines starting with '#' are skipped.
func (r *Reader) Next() (Access, error) {
	for r.scanner.Scan() {
		r.line++
		text := strings.TrimSpace(r.scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		return r.parse(text)
	}
	if err := r.scanner.Err(); err != nil {
		return Access{}, errors.Wrapf(err, "trace: %s:%d: read", r.path, r.line)
	}
	return Access{}, io.EOF
}

// parse decodes "addr pc accessType", each field decimal or 0x-prefixed hex.
func (r *Reader) parse(text string) (Access, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return Access{}, errors.Errorf("trace: %s:%d: want 3 fields (addr pc accessType), got %d", r.path, r.line, len(fields))
	}

	addr, err := parseUint(fields[0])
	if err != nil {
		return Access{}, errors.Wrapf(err, "trace: %s:%d: addr", r.path, r.line)
	}
	pc, err := parseUint(fields[1])
	if err != nil {
		return Access{}, errors.Wrapf(err, "trace: %s:%d: pc", r.path, r.line)
	}
	accessType, err := parseUint(fields[2])
	if err != nil {
		return Access{}, errors.Wrapf(err, "trace: %s:%d: accessType", r.path, r.line)
	}

	return Access{Addr: addr, PC: pc, AccessType: replacement.AccessType(accessType)}, nil
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 0, 64)
}
