package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_String(t *testing.T) {
	tbl, err := newTable([][]string{
		{"name", "score"},
		{"alice", "9.50"},
		{"bob"},
	})
	require.NoError(t, err)

	out := tbl.String()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "name")
	assert.Contains(t, lines[0], "score")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[1]), "0"))
	assert.Contains(t, lines[1], "9.50")
	assert.Contains(t, lines[2], "bob")
}

// 数字列只右对齐, 前导0/末尾0/千分位都保留原样
func TestTable_KeepsCellText(t *testing.T) {
	tbl, err := readCSV(strings.NewReader("sku,price,qty\n00123,1.50,\"1,000\"\n7,2.00,3\n"))
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true}, tbl.numericColumns())

	out := tbl.String()
	for _, cell := range []string{"00123", "1.50", "1,000", "2.00", "7", "3"} {
		assert.Contains(t, out, cell)
	}
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	// 右对齐: 同一列的末尾字符对齐
	assert.Equal(t, strings.Index(lines[1], "00123")+len("00123"), strings.Index(lines[2], "7")+len("7"))
}

func TestTable_NumericColumns(t *testing.T) {
	testCases := []struct {
		name    string
		records [][]string
		want    []bool
	}{
		{
			name:    "mixed",
			records: [][]string{{"a", "b"}, {"x", "1"}, {"y", "2.5"}},
			want:    []bool{false, true},
		},
		{
			name:    "blank cells ignored",
			records: [][]string{{"a"}, {""}, {"3"}},
			want:    []bool{true},
		},
		{
			name:    "all blank is not numeric",
			records: [][]string{{"a"}, {""}},
			want:    []bool{false},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tbl, err := newTable(tc.records)
			require.NoError(t, err)
			assert.Equal(t, tc.want, tbl.numericColumns())
		})
	}
}

func TestTable_HeaderOnly(t *testing.T) {
	tbl, err := newTable([][]string{{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, "Empty DataFrame\nColumns: [a, b]\nIndex: []", tbl.String())
}

func TestNewTable_Empty(t *testing.T) {
	_, err := newTable(nil)
	assert.ErrorIs(t, err, ErrNoColumns)

	_, err = newTable([][]string{{}})
	assert.ErrorIs(t, err, ErrNoColumns)
}
