// Package sequence holds validated numeric samples for the waveform plotter.
//
// A Sequence only ever contains finite float64 values. Inputs are coerced the
// way a loosely typed caller would expect (numeric kinds, numeric strings,
// booleans) and anything that does not end up finite is rejected with a
// *ValidationError. Batch appends are all-or-nothing.
package sequence

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

var (
	// ErrNotFinite is the reason for values that coerce to NaN or ±Inf.
	ErrNotFinite = errors.New("not a finite number")
	// ErrNotNumeric is the reason for values that cannot be coerced at all.
	ErrNotNumeric = errors.New("not a numeric value")
)

// ValidationError identifies the offending value of a rejected append.
// Index is the position inside the batch, or -1 for a scalar append or a
// value that is not a single element, such as an overflowing total.
type ValidationError struct {
	Index  int
	Value  any
	Reason error
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("sequence: value %#v: %v", e.Value, e.Reason)
	}
	return fmt.Sprintf("sequence: value %#v at index %d: %v", e.Value, e.Index, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Reason }

// Sequence is an ordered, append-only list of finite numbers.
// The zero value is an empty sequence ready to use.
type Sequence struct {
	vals []float64
}

// New returns an empty sequence.
func New() *Sequence { return &Sequence{} }

// Append accepts a scalar or a slice/array of scalars. Every candidate is
// coerced with Coerce; if any of them fails nothing is stored.
func (s *Sequence) Append(v any) error {
	batch, isBatch := asBatch(v)
	if !isBatch {
		f, err := Coerce(v)
		if err != nil {
			return &ValidationError{Index: -1, Value: v, Reason: err}
		}
		s.vals = append(s.vals, f)
		return nil
	}
	staged := make([]float64, 0, len(batch))
	for i, item := range batch {
		f, err := Coerce(item)
		if err != nil {
			return &ValidationError{Index: i, Value: item, Reason: err}
		}
		staged = append(staged, f)
	}
	s.vals = append(s.vals, staged...)
	return nil
}

// AppendFloats is the typed form of Append.
func (s *Sequence) AppendFloats(vs ...float64) error {
	for i, f := range vs {
		if !finite(f) {
			return &ValidationError{Index: i, Value: f, Reason: ErrNotFinite}
		}
	}
	s.vals = append(s.vals, vs...)
	return nil
}

// Total returns the sum of all elements, 0 when empty.
func (s *Sequence) Total() float64 {
	var sum float64
	for _, f := range s.vals {
		sum += f
	}
	return sum
}

// PositiveCount returns how many elements are strictly greater than zero.
func (s *Sequence) PositiveCount() int {
	n := 0
	for _, f := range s.vals {
		if f > 0 {
			n++
		}
	}
	return n
}

// Len returns the number of stored elements.
func (s *Sequence) Len() int { return len(s.vals) }

// At returns element i. It panics if i is out of range.
func (s *Sequence) At(i int) float64 { return s.vals[i] }

// Values returns a copy of the stored elements.
func (s *Sequence) Values() []float64 {
	out := make([]float64, len(s.vals))
	copy(out, s.vals)
	return out
}

// Coerce converts v to a finite float64.
// Numeric strings are parsed after trimming; the empty string is 0 and
// booleans are 1 or 0.
func Coerce(v any) (float64, error) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int8:
		f = float64(t)
	case int16:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case uint:
		f = float64(t)
	case uint8:
		f = float64(t)
	case uint16:
		f = float64(t)
	case uint32:
		f = float64(t)
	case uint64:
		f = float64(t)
	case bool:
		if t {
			f = 1
		}
	case json.Number:
		return parseNumber(string(t))
	case string:
		return parseNumber(t)
	default:
		return 0, ErrNotNumeric
	}
	if !finite(f) {
		return 0, ErrNotFinite
	}
	return f, nil
}

func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrNotFinite
		}
		return 0, ErrNotNumeric
	}
	if !finite(f) {
		return 0, ErrNotFinite
	}
	return f, nil
}

// asBatch unpacks slices and arrays into a []any. Strings are scalars.
func asBatch(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case []float64:
		out := make([]any, len(t))
		for i, f := range t {
			out[i] = f
		}
		return out, true
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, true
	case nil, string, json.Number:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
