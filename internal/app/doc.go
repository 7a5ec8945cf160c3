// Package app wires espmon together: configuration, preferences, the shared
// state store, the serial monitor goroutine, and the TUI. It is the
// composition root; domain logic lives in the packages it connects.
//
// The Monitor owns the serial reader lifecycle. At most one port is open at
// a time; its background goroutine routes each incoming line to a pane
// (ANSI-styled lines to the device pane, plain lines to the debug pane) and
// appends it to the store. Read failures are recoverable: they are logged,
// surfaced in the debug pane, and leave the monitor stopped.
package app
