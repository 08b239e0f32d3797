// SPDX-License-Identifier: MIT

package sparse

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Serialize renders m in the text format: the rows/cols header followed by
// one "(row, col, value)" line per entry in row-major order.
// Values use the shortest decimal form that parses back to the same float64.
// Complexity: O(nnz·log nnz).
func Serialize(m *Matrix) string {
	var sb strings.Builder
	_, _ = m.WriteTo(&sb) // strings.Builder never fails

	return sb.String()
}

// String implements fmt.Stringer; it is identical to Serialize.
func (m *Matrix) String() string {
	return Serialize(m)
}

// WriteTo streams the text form of m into w and implements io.WriterTo.
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	write := func(b []byte) error {
		k, err := bw.Write(b)
		n += int64(k)
		return err
	}

	buf := make([]byte, 0, 64)
	buf = append(append(buf, headerRows+"="...), strconv.Itoa(m.rows)...)
	buf = append(append(append(buf, '\n'), headerCols+"="...), strconv.Itoa(m.cols)...)
	buf = append(buf, '\n')
	if err := write(buf); err != nil {
		return n, sparseErrorf("WriteTo", err)
	}
	for _, e := range m.Entries() {
		buf = appendEntry(buf[:0], e)
		if err := write(buf); err != nil {
			return n, sparseErrorf("WriteTo", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return n, sparseErrorf("WriteTo", err)
	}

	return n, nil
}

// appendEntry appends "(row, col, value)\n".
func appendEntry(buf []byte, e Entry) []byte {
	buf = append(buf, '(')
	buf = strconv.AppendInt(buf, int64(e.Row), 10)
	buf = append(buf, ", "...)
	buf = strconv.AppendInt(buf, int64(e.Col), 10)
	buf = append(buf, ", "...)
	buf = FormatValue(buf, e.Value)

	return append(buf, ")\n"...)
}

// FormatValue appends the canonical decimal form of v: integral values carry
// no fractional part ("5", "-3"), others the shortest round-trip form.
func FormatValue(buf []byte, v float64) []byte {
	return strconv.AppendFloat(buf, v, 'g', -1, 64)
}
