package scenecsv

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Empty is the sentinel written for columns with no applicable data.
const Empty = ""

// Field is the result of coercing one value into its CSV text.
// A field that could not be represented has OK == false; rows still carry it,
// as an empty cell.
type Field struct {
	Text string
	OK   bool
}

func EmptyField() Field { return Field{Text: Empty, OK: true} }

func unrepresentable() Field { return Field{OK: false} }

// CoerceFloat formats v as the shortest decimal that round-trips.
// NaN and infinities are unrepresentable.
func CoerceFloat(v float64) Field {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return unrepresentable()
	}
	return Field{Text: formatFloat(v), OK: true}
}

// CoerceString accepts valid UTF-8 only.
func CoerceString(s string) Field {
	if !utf8.ValidString(s) {
		return unrepresentable()
	}
	return Field{Text: s, OK: true}
}

func CoerceInt(n int) Field {
	return Field{Text: strconv.Itoa(n), OK: true}
}

// CoerceBool uses the capitalised spelling the dataset tooling already parses.
func CoerceBool(b bool) Field {
	if b {
		return Field{Text: "True", OK: true}
	}
	return Field{Text: "False", OK: true}
}

func formatFloat(v float64) string {
	if v == 0 {
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}
	abs := math.Abs(v)
	if abs < 1e-4 || abs >= 1e16 {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// fieldSet collects the named cells of one row and counts degraded fields.
type fieldSet struct {
	cells    map[string]string
	degraded int
}

func newFieldSet() *fieldSet {
	return &fieldSet{cells: make(map[string]string, 96)}
}

func (fs *fieldSet) put(col string, f Field) {
	if !f.OK {
		fs.degraded++
		fs.cells[col] = Empty
		return
	}
	fs.cells[col] = f.Text
}

func (fs *fieldSet) str(col, v string)           { fs.put(col, CoerceString(v)) }
func (fs *fieldSet) float(col string, v float64) { fs.put(col, CoerceFloat(v)) }
func (fs *fieldSet) integer(col string, v int)   { fs.put(col, CoerceInt(v)) }
func (fs *fieldSet) empty(col string)            { fs.put(col, EmptyField()) }

func (fs *fieldSet) vec3(prefix string, v [3]float64) {
	fs.float(prefix+"_x", v[0])
	fs.float(prefix+"_y", v[1])
	fs.float(prefix+"_z", v[2])
}

// merge copies another set's cells over this one, including its degraded count.
func (fs *fieldSet) merge(other *fieldSet) {
	for k, v := range other.cells {
		fs.cells[k] = v
	}
	fs.degraded += other.degraded
}

// record projects the cells onto header order; unknown columns are empty.
func (fs *fieldSet) record(header []string) []string {
	out := make([]string, len(header))
	for i, col := range header {
		out[i] = fs.cells[col]
	}
	return out
}
