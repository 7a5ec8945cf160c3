// Package logsave persists captured serial output to disk: one plain .log
// file per pane, plus an optional colorized HTML mirror of the device pane.
package logsave
