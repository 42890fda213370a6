// Package svgpath builds SVG path-data fragments.
//
// Every helper returns a string fragment that can be concatenated with
// others to form a complete "d" attribute. Fragments carry their own
// surrounding whitespace, so callers never insert separators themselves.
// Lowercase commands are relative to the current point, uppercase
// commands are absolute.
package svgpath

import (
	"strconv"
	"strings"
)

// Num formats a coordinate using the shortest representation that
// round-trips. Negative zero prints as "0".
func Num(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Point formats a coordinate pair for use as a command argument.
func Point(x, y float64) string {
	return " " + Num(x) + "," + Num(y) + " "
}

// Curve emits a curve command ("c", "C", "s", "S", "q", "Q", "t", "T")
// followed by its control and end points.
func Curve(command string, points ...string) string {
	return " " + command + strings.Join(points, "")
}

// MoveTo moves the pen to an absolute position without drawing.
func MoveTo(x, y float64) string {
	return " M " + Num(x) + "," + Num(y) + " "
}

// MoveBy moves the pen by a relative offset without drawing.
func MoveBy(dx, dy float64) string {
	return " m " + Num(dx) + "," + Num(dy) + " "
}

// LineTo draws a straight line by a relative offset.
func LineTo(dx, dy float64) string {
	return " l " + Num(dx) + "," + Num(dy) + " "
}

// Line draws a polyline of relative segments.
func Line(points ...string) string {
	return " l" + strings.Join(points, "")
}

// LineOnAxis draws a horizontal or vertical line. The command is one of
// "H", "h", "V" or "v".
func LineOnAxis(command string, v float64) string {
	return " " + command + " " + Num(v) + " "
}

// Arc draws an elliptical arc with equal radii. Flags hold the
// x-axis-rotation, large-arc and sweep flags, e.g. "0 0,1".
func Arc(command, flags string, radius float64, point string) string {
	return command + " " + Num(radius) + " " + Num(radius) + " " + flags + point
}
