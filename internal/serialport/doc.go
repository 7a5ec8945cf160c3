// Package serialport enumerates serial ports and reads newline-delimited
// device output from one of them. It wraps go.bug.st/serial behind a small
// line-oriented API so the rest of espmon never touches raw port I/O.
package serialport
