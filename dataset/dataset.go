// Package dataset holds the records shown by the viewer: generated demo rows
// or names read line by line from a file.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/miosa/shytable/style"
	"github.com/miosa/shytable/ui/host"
	"github.com/miosa/shytable/ui/vlist"
)

// Record is one row of data.
type Record struct {
	Name string
}

// Generate returns n demo records named "Test 0" through "Test n-1".
func Generate(n int) []Record {
	rows := make([]Record, max(0, n))
	for i := range rows {
		rows[i] = Record{Name: "Test " + strconv.Itoa(i)}
	}
	return rows
}

const maxLineSize = 1 << 20

// Read loads one record per non-blank line. Trailing carriage returns are
// stripped so CRLF files read the same as LF files.
func Read(r io.Reader) ([]Record, error) {
	var rows []Record
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, Record{Name: line})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	return rows, nil
}

// Open reads records from path, or from stdin when path is "-".
func Open(path string) ([]Record, error) {
	if path == "-" {
		return Read(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// ---------------------------------------------------------------------------
// Row rendering
// ---------------------------------------------------------------------------

const (
	indexWidth = 9
	filler     = "abcdefghijklmnopabcdefghijklmnopabcdefghijklmnop"
	cellGap    = "  "
)

// Cells formats the index, filler and name cells of one row. The index is
// right-aligned so the columns line up; the host truncates to the viewport.
func Cells(index int, name string) string {
	return runewidth.FillLeft(strconv.Itoa(index), indexWidth) + cellGap + filler + cellGap + name
}

// RowFactory builds a host row per record, classed lightRow on even indices
// and darkRow on odd ones.
func RowFactory(r Record, index int) vlist.Element {
	row := host.NewRow(Cells(index, r.Name))
	if index%2 == 0 {
		row.AddClass(style.ClassLightRow)
	} else {
		row.AddClass(style.ClassDarkRow)
	}
	return row
}
