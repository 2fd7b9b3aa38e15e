package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReconstructCSV reads a truth table in the CSV layout WriteCSV produces
// and rebuilds a source expression by minterm enumeration. The returned
// string is valid engine input and is fed back to the optimiser unchanged
// by the CLI.
//
// An all-false table reconstructs to "0", an all-true table to "1".
func ReconstructCSV(r io.Reader) (string, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return "", fmt.Errorf("reading truth table csv: %w", err)
	}
	if len(records) < 2 {
		return "", fmt.Errorf("truth table csv needs a header and at least one row")
	}

	header := records[0]
	if len(header) < 2 || header[len(header)-1] != "result" {
		return "", fmt.Errorf("truth table csv header must end with a result column")
	}
	variables := header[:len(header)-1]

	var minterms []string
	allTrue := true
	for rowNum, record := range records[1:] {
		if len(record) != len(header) {
			return "", fmt.Errorf("row %d has %d columns, want %d", rowNum+1, len(record), len(header))
		}
		value, err := bit(record[len(record)-1])
		if err != nil {
			return "", fmt.Errorf("row %d result: %w", rowNum+1, err)
		}
		if !value {
			allTrue = false
			continue
		}

		lits := make([]string, len(variables))
		for i, cell := range record[:len(record)-1] {
			set, err := bit(cell)
			if err != nil {
				return "", fmt.Errorf("row %d column %s: %w", rowNum+1, variables[i], err)
			}
			if set {
				lits[i] = variables[i]
			} else {
				lits[i] = "!" + variables[i]
			}
		}
		minterms = append(minterms, strings.Join(lits, " & "))
	}

	switch {
	case len(minterms) == 0:
		return "0", nil
	case allTrue && len(minterms) == len(records)-1:
		return "1", nil
	default:
		return strings.Join(minterms, " | "), nil
	}
}

func bit(cell string) (bool, error) {
	switch strings.TrimSpace(cell) {
	case "0", "false":
		return false, nil
	case "1", "true":
		return true, nil
	default:
		return false, fmt.Errorf("cell %q is not a boolean", cell)
	}
}
