package svgpath

import "testing"

func TestNum(t *testing.T) {
	// Typed operands: constant arithmetic would be exact.
	a, b := 0.1, 0.2
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{-0.0, "0"},
		{1, "1"},
		{-4, "-4"},
		{14.5, "14.5"},
		{a + b, "0.30000000000000004"},
	}
	for _, tt := range tests {
		if got := Num(tt.in); got != tt.want {
			t.Errorf("Num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFragments(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"point", Point(1, -2), " 1,-2 "},
		{"moveTo", MoveTo(0, 5), " M 0,5 "},
		{"moveBy", MoveBy(0, 8), " m 0,8 "},
		{"lineTo", LineTo(3, 4), " l 3,4 "},
		{"line", Line(Point(6, 4), Point(3, 0)), " l 6,4  3,0 "},
		{"axis", LineOnAxis("v", 15), " v 15 "},
		{"curve", Curve("c", Point(0, 10), Point(-8, -8)), " c 0,10  -8,-8 "},
		{"arc", Arc("a", "0 0,1", 8, Point(8, -8)), "a 8 8 0 0,1 8,-8 "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
