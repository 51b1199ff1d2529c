package io

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/phil-mansfield/table"
)

// readColumns reads the given columns of a whitespace-separated text file.
// Lines starting with '#' are skipped.
func readColumns(fname string, colIdxs ...int) ([][]float64, error) {
	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	if len(cols) != len(colIdxs) {
		return nil, fmt.Errorf(
			"Read %d columns from '%s', but expected %d.",
			len(cols), fname, len(colIdxs),
		)
	}
	return cols, nil
}

// WriteColumns writes equal-length columns to fname in the format read by
// ReadTablesConfig's File and ValuesFile keys.
func WriteColumns(fname string, header string, cols ...[]float64) error {
	for i := range cols {
		if len(cols[i]) != len(cols[0]) {
			return fmt.Errorf(
				"Column %d has length %d, but column 0 has length %d.",
				i, len(cols[i]), len(cols[0]),
			)
		}
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)

	if header != "" {
		fmt.Fprintf(w, "# %s\n", header)
	}
	for j := 0; len(cols) > 0 && j < len(cols[0]); j++ {
		for i := range cols {
			if i > 0 {
				w.WriteString(" ")
			}
			w.WriteString(strconv.FormatFloat(cols[i][j], 'g', -1, 64))
		}
		w.WriteString("\n")
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
