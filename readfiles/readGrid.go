package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/notargets/goinpaint/inpaint"
)

// ParseGrid reads a grid from text: one row per line, values separated by commas and/or
// whitespace. "NaN" parses as NaN; "missing", "NA" and empty comma separated fields mark
// absent cells; lines starting with '#' are comments. When every row holds a single value
// the result is a 1D vector.
func ParseGrid(r io.Reader) (g inpaint.Grid[float64], err error) {
	var (
		scanner    = bufio.NewScanner(r)
		data       []float64
		absent     []bool
		nr, nc     int
		anyAbsent  bool
		lineNumber int
	)
	scanner.Buffer(make([]byte, 64*1024), 64*1024*1024)
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		fields := splitFields(line)
		if nr == 0 {
			nc = len(fields)
		} else if len(fields) != nc {
			err = fmt.Errorf("line %d: row has %d values, expected %d", lineNumber, len(fields), nc)
			return
		}
		for _, f := range fields {
			var (
				val float64
				abs bool
			)
			if val, abs, err = parseValue(f); err != nil {
				err = fmt.Errorf("line %d: %w", lineNumber, err)
				return
			}
			anyAbsent = anyAbsent || abs
			data = append(data, val)
			absent = append(absent, abs)
		}
		nr++
	}
	if err = scanner.Err(); err != nil {
		return
	}
	if nr == 0 {
		err = fmt.Errorf("no grid values found")
		return
	}
	if nc == 1 {
		g = inpaint.NewVector(data)
	} else {
		g = inpaint.NewMatrix(nr, nc, data)
	}
	if anyAbsent {
		g = g.WithAbsent(absent)
	}
	return
}

func ReadGrid(filename string, verbose bool) (g inpaint.Grid[float64], err error) {
	var file *os.File
	if verbose {
		fmt.Printf("Reading grid file named: %s\n", filename)
	}
	if file, err = os.Open(filename); err != nil {
		err = fmt.Errorf("unable to open file %s: %w", filename, err)
		return
	}
	defer file.Close()
	if g, err = ParseGrid(file); err != nil {
		err = fmt.Errorf("reading %s: %w", filename, err)
	}
	return
}

// WriteGrid writes one row per line with comma separated values. Absent cells are written
// as "missing" so the output reads back to the same grid.
func WriteGrid(w io.Writer, g inpaint.Grid[float64]) (err error) {
	bw := bufio.NewWriter(w)
	for i, row := range g.Rows() {
		for j, val := range row {
			if j > 0 {
				bw.WriteString(", ")
			}
			if g.IsAbsent(g.Shape().Index(inpaint.Coord{i, j})) {
				bw.WriteString("missing")
				continue
			}
			bw.WriteString(strconv.FormatFloat(val, 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func WriteGridFile(filename string, g inpaint.Grid[float64]) (err error) {
	var file *os.File
	if file, err = os.Create(filename); err != nil {
		return fmt.Errorf("unable to create file %s: %w", filename, err)
	}
	if err = WriteGrid(file, g); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return file.Close()
}

func splitFields(line string) (fields []string) {
	if !strings.Contains(line, ",") {
		return strings.Fields(line)
	}
	fields = strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return
}

func parseValue(token string) (val float64, absent bool, err error) {
	switch strings.ToLower(token) {
	case "", "missing", "na":
		return 0, true, nil
	case "nan":
		return math.NaN(), false, nil
	}
	if val, err = strconv.ParseFloat(token, 64); err != nil {
		err = fmt.Errorf("unable to read number from token: [%s]", token)
	}
	return
}
