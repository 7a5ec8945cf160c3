package serialport

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestScanLinesTrimsAndSkipsEmpty(t *testing.T) {
	src := strings.NewReader("one\r\n\r\n\ntwo\nthree\r\n")
	var got []string
	err := scanLines(src, func(line string) bool {
		got = append(got, line)
		return true
	})
	if err != nil {
		t.Fatalf("scanLines returned error: %v", err)
	}
	want := []string{"one", "two", "three"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("scanLines lines = %v, want %v", got, want)
	}
}

func TestScanLinesStopsWhenEmitReturnsFalse(t *testing.T) {
	src := strings.NewReader("a\nb\nc\n")
	var got []string
	err := scanLines(src, func(line string) bool {
		got = append(got, line)
		return len(got) < 2
	})
	if err != nil {
		t.Fatalf("scanLines returned error: %v", err)
	}
	if want := []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("scanLines lines = %v, want %v", got, want)
	}
}

type errReader struct {
	data string
	err  error
	read bool
}

func (r *errReader) Read(p []byte) (int, error) {
	if !r.read {
		r.read = true
		return copy(p, r.data), nil
	}
	return 0, r.err
}

func TestScanLinesReportsReadErrors(t *testing.T) {
	boom := errors.New("device unplugged")
	src := &errReader{data: "partial\n", err: boom}
	var got []string
	err := scanLines(src, func(line string) bool {
		got = append(got, line)
		return true
	})
	if !errors.Is(err, boom) {
		t.Fatalf("scanLines error = %v, want wrapped %v", err, boom)
	}
	if want := []string{"partial"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("scanLines lines = %v, want %v", got, want)
	}
}

func TestScanLinesEOFIsNotAnError(t *testing.T) {
	src := &errReader{data: "done\n", err: io.EOF}
	if err := scanLines(src, func(string) bool { return true }); err != nil {
		t.Fatalf("scanLines returned error on EOF: %v", err)
	}
}

func TestNextBaud(t *testing.T) {
	if got := NextBaud(115200); got != 230400 {
		t.Fatalf("NextBaud(115200) = %d, want 230400", got)
	}
	if got := NextBaud(4000000); got != 300 {
		t.Fatalf("NextBaud(4000000) = %d, want 300 (wrap)", got)
	}
	if got := NextBaud(12345); got != DefaultBaud {
		t.Fatalf("NextBaud(12345) = %d, want %d", got, DefaultBaud)
	}
}

func TestPortInfoLabel(t *testing.T) {
	if got := (PortInfo{Name: "/dev/ttyUSB0"}).Label(); got != "/dev/ttyUSB0" {
		t.Fatalf("Label = %q", got)
	}
	p := PortInfo{Name: "/dev/ttyACM0", Description: "ESP32-S3"}
	if got := p.Label(); got != "/dev/ttyACM0 (ESP32-S3)" {
		t.Fatalf("Label = %q", got)
	}
}
