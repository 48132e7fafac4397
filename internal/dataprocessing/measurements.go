package dataprocessing

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"harcli/internal/errors"
)

// maxLineSize accommodates raw measurement rows of several hundred
// full-precision floats on one line.
const maxLineSize = 1 << 20

// LoadMeasurements reads the whitespace-delimited measurement matrix at
// path and projects it to the catalog's mean()/std() columns. Every line
// must carry exactly one value per declared feature.
func LoadMeasurements(path string, catalog *Catalog) ([][]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("cannot open measurement file %s", path), err)
	}
	defer file.Close()

	rows, err := parseMeasurements(file, catalog)
	if err != nil {
		return nil, fmt.Errorf("load measurement file %s: %w", path, err)
	}
	return rows, nil
}

func parseMeasurements(r io.Reader, catalog *Catalog) ([][]float64, error) {
	kept := catalog.KeptIndexes()
	var rows [][]float64

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) != catalog.Size() {
			return nil, errors.NewSchemaMismatchError(
				fmt.Sprintf("measurement line %d has %d values, catalog declares %d columns",
					lineNo, len(fields), catalog.Size()))
		}

		row := make([]float64, len(kept))
		for i, idx := range kept {
			value, err := strconv.ParseFloat(fields[idx], 64)
			if err != nil {
				return nil, errors.NewParseError(
					fmt.Sprintf("measurement line %d column %d is not a float: %q",
						lineNo, idx+1, fields[idx]), err)
			}
			row[i] = value
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewStorageError("reading measurement file", err)
	}

	return rows, nil
}

// readIntColumn reads a file holding one integer per line, preserving line
// order. Used for the subject and activity-code files.
func readIntColumn(path string) ([]int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("cannot open %s", path), err)
	}
	defer file.Close()

	var values []int
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		value, err := strconv.Atoi(text)
		if err != nil {
			return nil, errors.NewParseError(
				fmt.Sprintf("%s line %d is not an integer: %q", path, lineNo, text), err)
		}
		values = append(values, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("reading %s", path), err)
	}

	return values, nil
}
