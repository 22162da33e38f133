package utils

import "testing"

func TestFormatKRW(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "KRW 0"},
		{999, "KRW 999"},
		{1234, "KRW 1,234"},
		{540000, "KRW 540,000"},
		{1234567890, "KRW 1,234,567,890"},
		{-10000, "-KRW 10,000"},
	}
	for _, c := range cases {
		if got := FormatKRW(c.in); got != c.want {
			t.Errorf("FormatKRW(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(123.456); got != "123.46" {
		t.Fatalf("FormatAmount: got %q", got)
	}
}
