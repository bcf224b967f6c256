// Package ui styles CLI output with lipgloss.
//
// [Palette] holds the named styles; [Default] is the palette used by the commands.
// Callers that write to non-terminals should use [Plain], which renders text unchanged.
package ui
