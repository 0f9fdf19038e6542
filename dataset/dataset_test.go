package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miosa/shytable/style"
	"github.com/miosa/shytable/ui/host"
)

func TestGenerate(t *testing.T) {
	rows := Generate(3)
	assert.Equal(t, []Record{{"Test 0"}, {"Test 1"}, {"Test 2"}}, rows)
	assert.Empty(t, Generate(0))
	assert.Empty(t, Generate(-4))
}

func TestRead_SkipsBlankLinesAndCR(t *testing.T) {
	in := "alice\r\n\n   \nbob\ncarol"
	rows, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []Record{{"alice"}, {"bob"}, {"carol"}}, rows)
}

func TestRead_Empty(t *testing.T) {
	rows, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestRead_PropagatesErrors(t *testing.T) {
	_, err := Read(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.txt")
	require.NoError(t, os.WriteFile(path, []byte("x\ny\n"), 0o644))

	rows, err := Open(path)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	_, err = Open(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCells_AlignsIndex(t *testing.T) {
	a := Cells(7, "Test 7")
	b := Cells(123456, "Test 123456")

	assert.True(t, strings.HasPrefix(a, "        7  "), a)
	assert.Equal(t, runewidth.StringWidth(a), indexWidth+2*len(cellGap)+len(filler)+len("Test 7"))
	assert.Equal(t, strings.Index(a, filler), strings.Index(b, filler))
	assert.True(t, strings.HasSuffix(b, "Test 123456"))
}

func TestRowFactory_AlternatesClasses(t *testing.T) {
	even := RowFactory(Record{"a"}, 0).(*host.Row)
	odd := RowFactory(Record{"b"}, 1).(*host.Row)

	assert.True(t, even.HasClass(style.ClassLightRow))
	assert.False(t, even.HasClass(style.ClassDarkRow))
	assert.True(t, odd.HasClass(style.ClassDarkRow))
	assert.Equal(t, Cells(1, "b"), odd.Line(0))
}
