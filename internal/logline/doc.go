// Package logline classifies and renders single lines of device output.
//
// # Overview
//
// Embedded firmware mixes two kinds of output on one serial stream: plain
// printf-style text, and structured log lines that carry ANSI SGR escape
// sequences for color. This package provides the two pure functions the rest
// of espmon is built around:
//
//   - Classify assigns a severity Category to a plain line using fixed
//     textual heuristics (structured level tags like "I (1234) ...", then
//     severity keywords).
//   - RenderANSI converts a line containing ANSI SGR escapes into a Fragment
//     of styled Spans (foreground color + bold), dropping unsupported codes.
//
// Both functions are deterministic, never fail, and keep all state local to
// one call, so they are safe to use from any goroutine without
// synchronization.
//
// # Palettes
//
// The 16-entry ANSI foreground palette and the category color table are fixed
// configuration. Saved logs from earlier versions of the tool embed these
// exact hex values, so they must not change.
//
// # Markup
//
// Fragment.HTML and HTMLLine serialize styled output to the span-based HTML
// markup used by the log exporter. Escaping of '&', '<' and '>' happens
// exactly once, during serialization; Span text is always raw.
package logline
