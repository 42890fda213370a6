package sink

import (
	"html"
	"math"
	"strconv"
)

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100+0, 'f', -1, 64)
}

func attr(s string) string { return html.EscapeString(s) }

func paint(c string) string {
	if c == "" {
		return "none"
	}
	return attr(c)
}
