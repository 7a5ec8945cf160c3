package ui

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"a longer string here", 10, "a longe..."},
		{"abc", 0, ""},
		{"abcdef", 2, "ab"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.max); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}

func TestTruncateMultibyte(t *testing.T) {
	got := truncate("ログディレクトリが長い", 8)
	if !utf8.ValidString(got) {
		t.Fatalf("truncate produced invalid UTF-8: %q", got)
	}
	if want := "ログディレ..."; got != want {
		t.Fatalf("truncate = %q, want %q", got, want)
	}
}

func TestTruncateMiddleMultibyte(t *testing.T) {
	got := truncateMiddle("ホーム/ユーザー/ログ/キャプチャ", 10)
	if !utf8.ValidString(got) {
		t.Fatalf("truncateMiddle produced invalid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 10 {
		t.Fatalf("truncateMiddle rune count = %d, want 10 (%q)", n, got)
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle("/home/user/.local/share/espmon/logs", 20); len(got) != 20 {
		t.Fatalf("truncateMiddle length = %d, want 20 (%q)", len(got), got)
	}
	if got := truncateMiddle("short", 20); got != "short" {
		t.Fatalf("truncateMiddle = %q, want unchanged", got)
	}
}
