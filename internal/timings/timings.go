// Package timings reads lists of timed values from text, CSV and JSON.
//
// Loaders return raw values ([]any) without coercing them: validation
// belongs to the sequence package, so a bad entry is reported by the plotter
// with its index instead of being skipped here.
package timings

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Extensions lists the file extensions Load understands.
var Extensions = []string{".csv", ".json", ".txt"}

// Supported reports whether path has an extension Load understands.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Parse splits s on commas, semicolons and whitespace.
func Parse(s string) []any {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ',', ';', ' ', '\t', '\n', '\r':
			return true
		}
		return false
	})
	out := make([]any, 0, len(fields))
	for _, f := range fields {
		out = append(out, f)
	}
	return out
}

// Load dispatches on the file extension; anything that is not .csv or .json
// is read as plain text.
func Load(path string) ([]any, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".json":
		return LoadJSON(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("timings: read file: %w", err)
	}
	return Parse(string(data)), nil
}

// LoadCSV reads one column of values. The column is the first header named
// value|duration|delta|time (case-insensitive); when the first row is
// numeric there is no header and column 0 is used.
func LoadCSV(path string) ([]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("timings: open csv: %w", err)
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("timings: parse csv: %w", err)
	}
	if len(recs) == 0 {
		return nil, errors.New("timings: empty csv")
	}
	idx := 0
	rows := recs
	if !numericRow(recs[0]) {
		idx = -1
		for i, h := range recs[0] {
			switch strings.ToLower(strings.TrimSpace(h)) {
			case "value", "duration", "delta", "time":
				if idx == -1 {
					idx = i
				}
			}
		}
		if idx == -1 {
			return nil, errors.New("timings: csv: value column not found")
		}
		rows = recs[1:]
	}
	out := make([]any, 0, len(rows))
	for _, row := range rows {
		if idx >= len(row) {
			continue
		}
		out = append(out, strings.TrimSpace(row[idx]))
	}
	return out, nil
}

// LoadJSON accepts a top-level array or an object with a "values" array.
// Numbers are kept as json.Number.
func LoadJSON(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("timings: read json: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("timings: parse json: %w", err)
	}
	switch t := raw.(type) {
	case []any:
		return t, nil
	case map[string]any:
		if vs, ok := t["values"].([]any); ok {
			return vs, nil
		}
		return nil, errors.New(`timings: json: object has no "values" array`)
	}
	return nil, errors.New("timings: json: expected an array or an object")
}

func numericRow(row []string) bool {
	if len(row) == 0 {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
	return err == nil
}
