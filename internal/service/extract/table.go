package extract

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KNICEX/analyst-agent/pkg/decimalx"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"
)

var ErrNoColumns = errors.New("no columns to parse from file")

type table struct {
	header []string
	rows   [][]string
}

func readCSV(r io.Reader) (table, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return table{}, err
	}
	return newTable(records)
}

// readXLSX 只读取第一个 sheet
func readXLSX(r io.Reader) (table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return table{}, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return table{}, ErrNoColumns
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return table{}, err
	}
	return newTable(rows)
}

func newTable(records [][]string) (table, error) {
	if len(records) == 0 {
		return table{}, ErrNoColumns
	}
	width := lo.Max(lo.Map(records, func(record []string, _ int) int {
		return len(record)
	}))
	if width == 0 {
		return table{}, ErrNoColumns
	}

	pad := func(record []string, _ int) []string {
		out := make([]string, width)
		copy(out, record)
		return out
	}
	return table{
		header: pad(records[0], 0),
		rows:   lo.Map(records[1:], pad),
	}, nil
}

// numericColumns 一列所有非空单元格都是数字时视为数字列, 只影响对齐, 单元格原文照印
func (t table) numericColumns() []bool {
	numeric := make([]bool, len(t.header))
	for col := range t.header {
		seen := false
		numeric[col] = lo.EveryBy(t.rows, func(row []string) bool {
			if strings.TrimSpace(row[col]) == "" {
				return true
			}
			seen = true
			_, ok := decimalx.Parse(row[col])
			return ok
		}) && seen
	}
	return numeric
}

func (t table) String() string {
	if len(t.rows) == 0 {
		return fmt.Sprintf("Empty DataFrame\nColumns: [%s]\nIndex: []", strings.Join(t.header, ", "))
	}

	numeric := t.numericColumns()
	aligns := make([]int, 0, len(t.header)+1)
	aligns = append(aligns, tablewriter.ALIGN_RIGHT)
	for _, isNum := range numeric {
		aligns = append(aligns, lo.Ternary(isNum, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT))
	}

	var buf strings.Builder
	tw := tablewriter.NewWriter(&buf)
	tw.SetHeader(append([]string{""}, t.header...))
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_RIGHT)
	tw.SetColumnAlignment(aligns)
	tw.SetBorder(false)
	tw.SetHeaderLine(false)
	tw.SetColumnSeparator("")
	tw.SetCenterSeparator("")
	tw.SetRowSeparator("")
	tw.SetTablePadding("  ")
	tw.SetNoWhiteSpace(true)

	for i, row := range t.rows {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, strconv.Itoa(i))
		cells = append(cells, row...)
		tw.Append(cells)
	}
	tw.Render()
	return strings.TrimRight(buf.String(), "\n")
}
