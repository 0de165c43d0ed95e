package decimalx

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parse 解析表格单元格中的数字, 允许首尾空白和千分位逗号
func Parse(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	s = strings.ReplaceAll(s, ",", "")
	res, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return res, true
}
