package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatColones renders an integer amount of colones with thousand
// separators, e.g. 282500 -> "₡ 282.500". Amounts carry no minor units.
func FormatColones(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s₡ %s", sign, formatThousand(amount))
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte('.')
		}
		out.WriteRune(c)
	}
	return out.String()
}
