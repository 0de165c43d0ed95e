package extract

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestExtractFile(t *testing.T) {
	testCases := []struct {
		name     string
		file     File
		contains []string
	}{
		{
			name:     "txt",
			file:     File{Name: "notes.txt", Content: strings.NewReader("hello world")},
			contains: []string{"hello world"},
		},
		{
			name:     "txt invalid utf8",
			file:     File{Name: "bin.txt", Content: bytes.NewReader([]byte{0xff, 0xfe, 0xfd})},
			contains: []string{"[Error reading file bin.txt:", ErrInvalidUTF8.Error()},
		},
		{
			name:     "csv",
			file:     File{Name: "sales.csv", Content: strings.NewReader("city,revenue\nParis,1200.50\nBerlin,980\n")},
			contains: []string{"city", "revenue", "Paris", "1200.5", "Berlin", "980"},
		},
		{
			name:     "csv ragged rows",
			file:     File{Name: "bad.csv", Content: strings.NewReader("a,b\n1,2,3\n")},
			contains: []string{"[Error reading file bad.csv:"},
		},
		{
			name:     "csv empty",
			file:     File{Name: "empty.csv", Content: strings.NewReader("")},
			contains: []string{"[Error reading file empty.csv:", ErrNoColumns.Error()},
		},
		{
			name:     "xlsx garbage",
			file:     File{Name: "broken.xlsx", Content: strings.NewReader("not a zip")},
			contains: []string{"[Error reading file broken.xlsx:"},
		},
		{
			name:     "png",
			file:     File{Name: "chart.png", Content: bytes.NewReader([]byte{0x89, 'P', 'N', 'G'})},
			contains: []string{"[Image uploaded: chart.png]"},
		},
		{
			name:     "jpeg",
			file:     File{Name: "photo.jpeg", Content: strings.NewReader("")},
			contains: []string{"[Image uploaded: photo.jpeg]"},
		},
		{
			name:     "suffix is case sensitive",
			file:     File{Name: "PHOTO.JPG", Content: strings.NewReader("")},
			contains: []string{"[Unsupported file type: PHOTO.JPG]"},
		},
		{
			name:     "unsupported",
			file:     File{Name: "report.pdf", Content: strings.NewReader("%PDF")},
			contains: []string{"Unsupported", "report.pdf"},
		},
		{
			name:     "read error",
			file:     File{Name: "notes.txt", Content: failingReader{}},
			contains: []string{"[Error reading file notes.txt: disk on fire]"},
		},
		{
			name:     "nil content",
			file:     File{Name: "notes.txt"},
			contains: []string{"[Error reading file notes.txt:", ErrNoContent.Error()},
		},
	}

	svc := NewService()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			text := svc.ExtractFile(context.Background(), tc.file)
			for _, want := range tc.contains {
				assert.Contains(t, text, want)
			}
		})
	}
}

func TestExtractFile_XLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"product", "units"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"apple", 30}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{"pear", 12}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	text := NewService().ExtractFile(context.Background(), File{Name: "stock.xlsx", Content: buf})
	for _, want := range []string{"product", "units", "apple", "30", "pear", "12"} {
		assert.Contains(t, text, want)
	}
	assert.NotContains(t, text, "[Error")
}
