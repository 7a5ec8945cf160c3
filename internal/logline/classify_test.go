package logline

import (
	"sync"
	"testing"
)

func TestClassifyLevelTags(t *testing.T) {
	cases := []struct {
		line string
		want Category
	}{
		{"I (123) boot: ready", CategoryInfo},
		{"E (99) wifi: failed", CategoryError},
		{"W (4711) heap: low memory", CategoryWarning},
		{"D (1) gpio: toggling pin 2", CategoryDebug},
		{"V (88) event: loop tick", CategoryVerbose},
		{"  I (5) spi: leading whitespace ok", CategoryInfo},
		{"I(0) no space before counter", CategoryInfo},
	}
	for _, tc := range cases {
		if got := Classify(tc.line); got != tc.want {
			t.Fatalf("Classify(%q) = %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestClassifyLevelTagWinsOverKeywords(t *testing.T) {
	// The structured tag takes priority even when the message body carries
	// a conflicting keyword.
	if got := Classify("I (42) ota: update failed, retrying"); got != CategoryInfo {
		t.Fatalf("Classify = %q, want %q", got, CategoryInfo)
	}
}

func TestClassifyANSI(t *testing.T) {
	if got := Classify("\x1b[0;32mI (305) cpu_start: Pro cpu up.\x1b[0m"); got != CategoryANSI {
		t.Fatalf("Classify = %q, want %q", got, CategoryANSI)
	}
}

func TestClassifyKeywords(t *testing.T) {
	cases := []struct {
		line string
		want Category
	}{
		{"this is a fatal crash", CategoryError},
		{"assert triggered in task wifi", CategoryError},
		{"Guru Meditation Error: Core 1 panic'ed", CategoryError},
		{"WARNING: brownout detected", CategoryWarning},
		{"Info: sketch started", CategoryInfo},
		{"dbg: entering loop", CategoryDebug},
		{"trace: stack dump follows", CategoryVerbose},
		{"[E] sensor timeout", CategoryError},
		{"12:00:01 W/wifi: weak signal", CategoryWarning},
	}
	for _, tc := range cases {
		if got := Classify(tc.line); got != tc.want {
			t.Fatalf("Classify(%q) = %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestClassifyErrorBeatsWarning(t *testing.T) {
	// Keyword groups are checked in fixed priority order.
	if got := Classify("warning: update failed"); got != CategoryError {
		t.Fatalf("Classify = %q, want %q", got, CategoryError)
	}
}

func TestClassifyFallback(t *testing.T) {
	if got := Classify("hello world"); got != CategoryDefault {
		t.Fatalf("Classify = %q, want %q", got, CategoryDefault)
	}
	if got := Classify(""); got != CategoryDefault {
		t.Fatalf("Classify(\"\") = %q, want %q", got, CategoryDefault)
	}
}

func TestCategoryColor(t *testing.T) {
	if got := CategoryError.Color(); got != "#FF0000" {
		t.Fatalf("CategoryError.Color() = %q, want #FF0000", got)
	}
	if got := Category("bogus").Color(); got != "#e0e0e0" {
		t.Fatalf("unknown category color = %q, want default #e0e0e0", got)
	}
}

func TestClassifyConcurrent(t *testing.T) {
	lines := []string{
		"I (123) boot: ready",
		"this is a fatal crash",
		"\x1b[31mred\x1b[0m",
		"hello world",
	}
	sequential := make([]Category, len(lines))
	for i, line := range lines {
		sequential[i] = Classify(line)
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, line := range lines {
				if got := Classify(line); got != sequential[i] {
					t.Errorf("concurrent Classify(%q) = %q, want %q", line, got, sequential[i])
				}
			}
		}()
	}
	wg.Wait()
}
