// Package ui implements the espmon terminal interface with Bubble Tea.
//
// The screen is a header bar, two bordered panes (Debug for plain output,
// Device for ANSI-styled output), and a command bar. The model refreshes on
// a 250ms tick by snapshotting the shared state store; the store's sequence
// counter makes unchanged ticks free. Pane content colors come from the
// fixed logline palettes; themes only restyle the chrome.
//
// Overlays (port picker, help) temporarily replace the pane area. Search is
// a case-insensitive substring scan over the focused pane with n/N
// navigation.
package ui
