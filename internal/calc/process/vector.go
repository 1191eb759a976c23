package process

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

type Entry struct {
	Component Component
	Value     float64
}

// Vector is an ordered per-component quantity, kmol/hr unless stated
// otherwise. The order is for display only.
type Vector []Entry

// Clone returns a copy of v that shares no storage with it.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	return append(make(Vector, 0, len(v)), v...)
}

// Get returns the value for c, or 0 when c is absent.
func (v Vector) Get(c Component) float64 {
	for _, e := range v {
		if e.Component == c {
			return e.Value
		}
	}
	return 0
}

func (v Vector) Has(c Component) bool {
	for _, e := range v {
		if e.Component == c {
			return true
		}
	}
	return false
}

// Total sums the values in order.
func (v Vector) Total() float64 {
	sum := 0.0
	for _, e := range v {
		sum += e.Value
	}
	return sum
}

func (v Vector) Components() []Component {
	out := make([]Component, len(v))
	for i, e := range v {
		out[i] = e.Component
	}
	return out
}

// MarshalJSON writes the vector as an object keyed by display label,
// keeping the vector order.
func (v Vector) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range v {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Component.String())
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// along pairs comps with vals by position.
func along(comps []Component, vals ...float64) Vector {
	if len(comps) != len(vals) {
		panic("process: component and value count differ")
	}
	v := make(Vector, len(comps))
	for i, c := range comps {
		v[i] = Entry{Component: c, Value: vals[i]}
	}
	return v
}

// Round2 rounds x to two decimals the way the plant spreadsheets did:
// the exact binary value decides, exact ties go away from zero.
func Round2(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	// Only multiples of 1/8 can sit exactly on a .xx5 tie.
	if f := x * 8; f == math.Trunc(f) {
		return math.Round(x*100) / 100
	}
	r, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	return r
}
