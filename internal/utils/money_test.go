package utils

import "testing"

func TestFormatColones(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "₡ 0"},
		{500, "₡ 500"},
		{282500, "₡ 282.500"},
		{1000000, "₡ 1.000.000"},
		{-35000, "-₡ 35.000"},
	}
	for _, c := range cases {
		if got := FormatColones(c.in); got != c.want {
			t.Fatalf("FormatColones(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}
