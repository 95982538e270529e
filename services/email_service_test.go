package services

import "testing"

func TestFormatEuros(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "0,00 €"},
		{5, "0,05 €"},
		{50, "0,50 €"},
		{12450, "124,50 €"},
		{8450, "84,50 €"},
		{100000, "1000,00 €"},
		{-2500, "-25,00 €"},
	}

	for _, c := range cases {
		if got := FormatEuros(c.cents); got != c.want {
			t.Fatalf("FormatEuros(%d) = %q, want %q", c.cents, got, c.want)
		}
	}
}
