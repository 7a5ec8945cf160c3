package serialport

import (
	"fmt"
	"strings"

	"go.bug.st/serial/enumerator"
)

// DefaultBaud is the rate selected when neither config nor prefs set one.
const DefaultBaud = 115200

// BaudRates lists the rates offered by the baud picker, lowest first.
var BaudRates = []int{
	300, 600, 1200, 2400, 4800, 9600, 14400, 19200, 38400, 57600,
	115200, 230400, 250000, 500000, 1000000, 2000000, 3000000, 4000000,
}

// NextBaud returns the rate after current in BaudRates, wrapping around.
// An unknown current rate restarts at DefaultBaud.
func NextBaud(current int) int {
	for i, b := range BaudRates {
		if b == current {
			return BaudRates[(i+1)%len(BaudRates)]
		}
	}
	return DefaultBaud
}

// PortInfo describes one available serial port.
type PortInfo struct {
	Name        string // device path, e.g. /dev/ttyUSB0
	Description string // USB product string when available
}

// Label returns the port name with its description appended when known.
func (p PortInfo) Label() string {
	if p.Description == "" {
		return p.Name
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.Description)
}

// List enumerates the serial ports currently attached to the system.
func List() ([]PortInfo, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("enumerate ports: %w", err)
	}
	infos := make([]PortInfo, 0, len(ports))
	for _, p := range ports {
		info := PortInfo{Name: p.Name}
		if p.IsUSB {
			info.Description = strings.TrimSpace(p.Product)
		}
		infos = append(infos, info)
	}
	return infos, nil
}
