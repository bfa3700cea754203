/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: print.go
Description: Table previews. Print writes a fixed-width plain text preview of the header
and the first rows; Render draws the same preview as a bordered lipgloss table.
*/

package frame

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	// RuleLine separates preview and report blocks
	RuleLine = "==============================================================="

	cellWidth = 10
	cellLimit = 8
)

// Print writes a rule line, the header and at most n rows. Each cell is
// cut to 8 characters and padded to a width of 10.
func (t *Table) Print(w io.Writer, n int) error {
	if _, err := fmt.Fprintln(w, RuleLine); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, formatLine(t.header)); err != nil {
		return err
	}
	for _, row := range t.previewRows(n) {
		if _, err := fmt.Fprintln(w, formatLine(row)); err != nil {
			return err
		}
	}
	return nil
}

// Render returns the header and at most n rows as a bordered table
func (t *Table) Render(n int) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	header := make([]string, len(t.header))
	for i, name := range t.header {
		header[i] = headerStyle.Render(name)
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("63"))).
		Headers(header...).
		Rows(t.previewRows(n)...)
	return tbl.String()
}

// previewRows stringifies the first n rows
func (t *Table) previewRows(n int) [][]string {
	if n < 0 || n > len(t.data) {
		n = len(t.data)
	}
	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		cells := make([]string, len(t.data[i]))
		for j, v := range t.data[i] {
			cells[j] = v.String()
		}
		rows[i] = cells
	}
	return rows
}

func formatLine(cells []string) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = fmt.Sprintf("%-*s", cellWidth, truncate(cell, cellLimit))
	}
	return strings.Join(parts, " | ")
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
