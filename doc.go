// @focus: #progress { bar }
// Package progress renders dynamically updating progress bars on terminal
// and non-terminal streams.
//
// Features:
//   - Composable widget lines: percentage, expanding glyph bar, timers,
//     plain and adaptive ETA, spinners, counters, transfer rates
//   - Known and unknown-length bars with throttled in-place redraws
//   - Percentage-driven color gradients with automatic capability detection
//   - Iterator adapters that drive a bar from any range-over-func sequence
//   - A bypass writer for log output interleaved above the bar
//
// All rendering happens synchronously on the caller's goroutine; a bar is
// not safe for concurrent use.
package progress
