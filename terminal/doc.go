// @focus: #sys { term }
// Package terminal provides direct ANSI terminal control for single-line
// progress rendering.
//
// Features:
//   - CSI and SGR escape sequence builders with no I/O of their own
//   - True color (24-bit), 256-color and 16-color output encoding
//   - Color model with RGB/HSL forms, a named registry, interpolation
//     and percentage-driven gradients
//   - Capability detection from environment signals and stream terminal-ness
//   - Blocking cursor position query (DSR/CPR round trip)
//   - SIGWINCH resize detection
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
