// Package console reports run progress on a terminal.
//
// Output is styled with lipgloss. When the output is a terminal the
// "Computing sentiment" step is an animated bubbletea spinner, otherwise a
// plain line is printed.
package console
