// Package reqfile reads batch conversion requests.
//
// One request per line, whitespace separated:
//
//	DOMAIN VALUE FROM TO
//
// Blank lines and lines starting with '#' are skipped. A line that cannot
// be parsed is still emitted, with Err set, so callers can report it in
// input order.
package reqfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"unitconv-core/units"
)

// ErrFieldCount marks a line that does not have exactly four fields.
var ErrFieldCount = errors.New("want 4 fields: DOMAIN VALUE FROM TO")

// Record is one request line.
type Record struct {
	File   string
	Line   int
	Domain units.Domain
	Input  string // VALUE column as written
	From   string
	To     string
	Err    error
}

// ParseLine splits one non-comment line into a Record (File/Line unset).
func ParseLine(line string) Record {
	f := strings.Fields(line)
	if len(f) != 4 {
		return Record{Input: strings.TrimSpace(line), Err: fmt.Errorf("%w (got %d)", ErrFieldCount, len(f))}
	}
	r := Record{Input: f[1], From: f[2], To: f[3]}
	d, err := units.ParseDomain(f[0])
	if err != nil {
		r.Domain = units.Domain(f[0])
		r.Err = err
		return r
	}
	r.Domain = d
	return r
}

// Stream opens path and calls emit for every request line.
// Cancellation via ctx is honored between lines. emit may return an error
// to stop early; that error is returned unchanged.
func Stream(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamReader(ctx, path, rc, emit)
}

// StreamReader is Stream for an already open reader; name fills Record.File.
func StreamReader(ctx context.Context, name string, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		rec := ParseLine(line)
		rec.File, rec.Line = name, ln
		if err := emit(rec); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%s: scan: %w", name, err)
	}
	return nil
}
