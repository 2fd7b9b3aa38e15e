package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/logic-lang/logicopt/core/invariant"
)

// WriteCSV emits a truth table as CSV: a header of the variable names plus
// a result column, then one row per assignment in canonical row order
// (bit i of the row index is the value of variables[i]).
func WriteCSV(w io.Writer, variables []string, table []bool) error {
	invariant.Precondition(len(table) == 1<<len(variables),
		"table length %d does not match %d variables", len(table), len(variables))

	cw := csv.NewWriter(w)

	header := make([]string, 0, len(variables)+1)
	header = append(header, variables...)
	header = append(header, "result")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	record := make([]string, len(variables)+1)
	for row, value := range table {
		for i := range variables {
			record[i] = "0"
			if row&(1<<i) != 0 {
				record[i] = "1"
			}
		}
		record[len(variables)] = "0"
		if value {
			record[len(variables)] = "1"
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row %d: %w", row, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
