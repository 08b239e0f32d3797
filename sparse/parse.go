// SPDX-License-Identifier: MIT

package sparse

import (
	"bufio"
	"errors"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	headerRows    = "rows"
	headerCols    = "cols"
	commentPrefix = "#"

	// maxLineBytes bounds a single input line for the scanner.
	maxLineBytes = 1 << 20
)

var (
	// headerPattern matches "name=<token>" with optional spaces around '='.
	headerPattern = regexp.MustCompile(`^([A-Za-z]+)\s*=\s*(\S+)$`)

	// entryPattern matches "(row, col, value)". Coordinates may carry a sign so
	// that negative indices surface as out-of-bounds rather than malformed.
	entryPattern = regexp.MustCompile(
		`^\(\s*([+-]?\d+)\s*,\s*([+-]?\d+)\s*,\s*` +
			`([+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?|[+-]?(?i:inf|infinity|nan))` +
			`\s*\)$`)
)

// Parse reads a matrix from its text form.
//
// Implementation:
//   - Stage 1: skip blank and '#' lines; read "rows=" then "cols=".
//   - Stage 2: match every further significant line against the entry pattern,
//     check bounds, duplicates, finiteness and the non-zero rule.
//   - Stage 3: return the matrix, or the first *FormatError (never a partial matrix).
//
// Errors:
//   - *FormatError with one of the Reason* constants; errors.Is(err, ErrFormat) holds.
//
// Complexity: O(len(text)).
func Parse(text string, opts ...Option) (*Matrix, error) {
	return ParseReader(strings.NewReader(text), opts...)
}

// ParseReader is Parse over an io.Reader. Read failures are returned as-is
// (wrapped), not as *FormatError.
func ParseReader(r io.Reader, opts ...Option) (*Matrix, error) {
	p := &parser{opts: gatherOptions(opts...), sc: bufio.NewScanner(r)}
	p.sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	return p.run()
}

// parser carries the scanner position across the header and entry stages.
type parser struct {
	opts Options
	sc   *bufio.Scanner
	line int
}

// next returns the next significant (non-blank, non-comment) trimmed line.
// ok is false at end of input.
func (p *parser) next() (text string, ok bool) {
	for p.sc.Scan() {
		p.line++
		text = strings.TrimSpace(p.sc.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}

		return text, true
	}

	return "", false
}

func (p *parser) run() (*Matrix, error) {
	rows, err := p.header(headerRows)
	if err != nil {
		return nil, err
	}
	cols, err := p.header(headerCols)
	if err != nil {
		return nil, err
	}

	m := &Matrix{rows: rows, cols: cols, entries: make(map[Coord]float64)}
	for {
		text, ok := p.next()
		if !ok {
			break
		}
		c, v, ferr := p.entry(text)
		if ferr != nil {
			return nil, ferr
		}
		if err = m.checkIndex(c.Row, c.Col); err != nil {
			return nil, newFormatError(ReasonOutOfBounds, p.line, text)
		}
		if _, dup := m.entries[c]; dup {
			return nil, newFormatError(ReasonDuplicateEntry, p.line, text)
		}
		if p.opts.isZero(v) {
			return nil, newFormatError(ReasonZeroEntry, p.line, text)
		}
		m.entries[c] = v
	}
	if err = p.sc.Err(); err != nil {
		return nil, sparseErrorf("Parse", err)
	}

	return m, nil
}

// header reads the next significant line as "name=<non-negative int>".
func (p *parser) header(name string) (int, error) {
	text, ok := p.next()
	if !ok {
		if err := p.sc.Err(); err != nil {
			return 0, sparseErrorf("Parse", err)
		}
		return 0, newFormatError(ReasonInvalidDimension, p.line, "")
	}
	sub := headerPattern.FindStringSubmatch(text)
	if sub == nil || sub[1] != name {
		return 0, newFormatError(ReasonInvalidDimension, p.line, text)
	}
	n, err := strconv.Atoi(sub[2])
	if err != nil || n < 0 {
		return 0, newFormatError(ReasonInvalidDimension, p.line, text)
	}

	return n, nil
}

// entry decodes one "(row, col, value)" line. Bounds, duplicate and zero
// checks belong to the caller.
func (p *parser) entry(text string) (Coord, float64, error) {
	sub := entryPattern.FindStringSubmatch(text)
	if sub == nil {
		return Coord{}, 0, newFormatError(ReasonMalformedEntry, p.line, text)
	}
	row, err := strconv.Atoi(sub[1])
	if err != nil {
		return Coord{}, 0, newFormatError(indexReason(err), p.line, text)
	}
	col, err := strconv.Atoi(sub[2])
	if err != nil {
		return Coord{}, 0, newFormatError(indexReason(err), p.line, text)
	}
	v, err := strconv.ParseFloat(sub[3], 64)
	if err != nil {
		return Coord{}, 0, newFormatError(ReasonMalformedEntry, p.line, text)
	}
	if p.opts.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return Coord{}, 0, newFormatError(ReasonMalformedEntry, p.line, text)
	}

	return Coord{Row: row, Col: col}, v, nil
}

// indexReason classifies a failed coordinate conversion. The pattern already
// guarantees digits, so a range error means the index cannot fit any shape.
func indexReason(err error) string {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		return ReasonOutOfBounds
	}

	return ReasonMalformedEntry
}
