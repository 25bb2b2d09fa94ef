package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

var errEmptyTable = errors.New("table has no numeric rows")

// readTable parses a CSV trace table into a dense matrix. A first row that
// does not parse as numbers is treated as a header and skipped.
func readTable(r io.Reader) (*mat.Dense, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var (
		data []float64
		cols int
		rows int
	)
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}

		values, err := parseRow(record)
		if err != nil {
			if rows == 0 && line == 1 {
				continue
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if rows == 0 {
			cols = len(values)
		}
		data = append(data, values...)
		rows++
	}

	if rows == 0 {
		return nil, errEmptyTable
	}
	return mat.NewDense(rows, cols, data), nil
}

func parseRow(record []string) ([]float64, error) {
	values := make([]float64, len(record))
	for i, field := range record {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		values[i] = v
	}
	return values, nil
}

func loadTable(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readTable(f)
}

// parseIndexes reads a comma-separated column index list such as "0,1,2".
func parseIndexes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	indexes := make([]int, 0, len(parts))
	for _, p := range parts {
		idx, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid index %q: %w", p, err)
		}
		indexes = append(indexes, idx)
	}
	return indexes, nil
}
