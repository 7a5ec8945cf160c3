package state

import (
	"errors"
	"fmt"
	"testing"
)

func TestStoreAppendRoutesToPanes(t *testing.T) {
	store := &Store{}
	store.Append(PaneDebug, "plain")
	store.Append(PaneDevice, "\x1b[31mstyled\x1b[0m")
	store.Append(PaneDebug, "more")

	snap := store.Snapshot()
	if len(snap.Debug) != 2 || len(snap.Device) != 1 {
		t.Fatalf("pane sizes = %d/%d, want 2/1", len(snap.Debug), len(snap.Device))
	}
	if snap.Debug[0].Text != "plain" || snap.Debug[1].Text != "more" {
		t.Fatalf("debug pane = %+v", snap.Debug)
	}
	if snap.Debug[0].When.IsZero() {
		t.Fatal("appended line has zero timestamp")
	}
}

func TestStoreSnapshotIsIsolated(t *testing.T) {
	store := &Store{}
	store.Append(PaneDebug, "first")

	snap := store.Snapshot()
	snap.Debug[0].Text = "mutated"

	if got := store.Snapshot().Debug[0].Text; got != "first" {
		t.Fatalf("store line = %q, want %q (snapshot must be a copy)", got, "first")
	}
}

func TestStoreSeqAdvances(t *testing.T) {
	store := &Store{}
	before := store.Snapshot().Seq
	store.Append(PaneDebug, "x")
	store.Clear()
	store.SetLink(Link{Connected: true, Port: "/dev/ttyUSB0", Baud: 115200})
	if after := store.Snapshot().Seq; after != before+3 {
		t.Fatalf("Seq = %d, want %d", after, before+3)
	}
}

func TestStoreClear(t *testing.T) {
	store := &Store{}
	store.Append(PaneDebug, "a")
	store.Append(PaneDevice, "b")
	store.SetLink(Link{Connected: true, Port: "/dev/ttyUSB0", Baud: 9600})
	store.Clear()

	snap := store.Snapshot()
	if len(snap.Debug) != 0 || len(snap.Device) != 0 {
		t.Fatalf("panes not cleared: %d/%d", len(snap.Debug), len(snap.Device))
	}
	if !snap.Link.Connected {
		t.Fatal("Clear must not touch link status")
	}
}

func TestStoreSetError(t *testing.T) {
	store := &Store{}
	store.SetLink(Link{Connected: true, Port: "/dev/ttyUSB0", Baud: 115200})
	boom := errors.New("device unplugged")
	store.SetError(boom)

	snap := store.Snapshot()
	if snap.Link.Connected {
		t.Fatal("link still marked connected after SetError")
	}
	if snap.Link.Port != "/dev/ttyUSB0" {
		t.Fatalf("Port = %q, want attempted port kept", snap.Link.Port)
	}
	if !errors.Is(snap.Link.LastError, boom) {
		t.Fatalf("LastError = %v, want wrapped %v", snap.Link.LastError, boom)
	}
}

func TestStoreCapsPaneHistory(t *testing.T) {
	store := &Store{}
	for i := 0; i < maxPaneLines+10; i++ {
		store.Append(PaneDebug, fmt.Sprintf("line %d", i))
	}
	snap := store.Snapshot()
	if len(snap.Debug) != maxPaneLines {
		t.Fatalf("debug pane has %d lines, want %d", len(snap.Debug), maxPaneLines)
	}
	if got := snap.Debug[0].Text; got != "line 10" {
		t.Fatalf("oldest kept line = %q, want %q", got, "line 10")
	}
}

func TestPaneString(t *testing.T) {
	if PaneDebug.String() != "debug" || PaneDevice.String() != "device" {
		t.Fatalf("Pane strings = %q/%q", PaneDebug, PaneDevice)
	}
}
