package serialport

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.bug.st/serial"
)

// Reader reads newline-delimited lines from an open serial port.
type Reader struct {
	port serial.Port
	name string
	baud int

	closeOnce sync.Once
	closed    chan struct{}
}

// Open opens the named port at the given baud rate (8 data bits, no parity,
// one stop bit).
func Open(name string, baud int) (*Reader, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(name, mode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return &Reader{
		port:   port,
		name:   name,
		baud:   baud,
		closed: make(chan struct{}),
	}, nil
}

// Name returns the device path the reader was opened with.
func (r *Reader) Name() string { return r.name }

// Baud returns the configured baud rate.
func (r *Reader) Baud() int { return r.baud }

// Lines blocks, invoking onLine for every non-empty line read from the port
// until the context is cancelled, the reader is closed, or a read error
// occurs. A genuine read error is reported once through onErr; errors caused
// by Close or cancellation are swallowed.
func (r *Reader) Lines(ctx context.Context, onLine func(string), onErr func(error)) {
	err := scanLines(r.port, func(line string) bool {
		select {
		case <-ctx.Done():
			return false
		case <-r.closed:
			return false
		default:
		}
		onLine(line)
		return true
	})
	if err == nil {
		return
	}
	select {
	case <-r.closed:
	case <-ctx.Done():
	default:
		onErr(err)
	}
}

// Close closes the underlying port, unblocking any pending read. Safe to
// call more than once.
func (r *Reader) Close() {
	r.closeOnce.Do(func() {
		close(r.closed)
		_ = r.port.Close()
	})
}

// scanLines feeds non-empty, CR-trimmed lines to emit until emit returns
// false or the stream ends. Garbled bytes are passed through untouched; the
// display layer renders them best-effort.
func scanLines(src io.Reader, emit func(string) bool) error {
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 4*1024), 256*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if !emit(line) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read serial: %w", err)
	}
	return nil
}
