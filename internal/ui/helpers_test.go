package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"much too long for this", 8, "much to…"},
		{"anything", 1, "…"},
		{"anything", 0, ""},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.width); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestPad(t *testing.T) {
	if got := pad("ab", 5); got != "ab   " {
		t.Fatalf("pad short = %q", got)
	}
	if got := pad("abcdef", 4); got != "abc…" {
		t.Fatalf("pad long = %q", got)
	}
}

func TestThemeByNameFallsBack(t *testing.T) {
	if got := ThemeByName("nope").Name; got != "Dracula" {
		t.Fatalf("expected default theme, got %q", got)
	}
	if got := ThemeByName("Slate").Name; got != "Slate" {
		t.Fatalf("expected Slate, got %q", got)
	}
}

func TestStatusColorUnknownIsMuted(t *testing.T) {
	th := ThemeByName("Dracula")
	if th.StatusColor("no-such-status") != th.Muted {
		t.Fatal("unknown status should use the muted color")
	}
}
