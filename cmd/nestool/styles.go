package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	heading lipgloss.Style
	label   lipgloss.Style
	err     lipgloss.Style
}

func newStyles() styles {
	return styles{
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		label:   lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
		err:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
	}
}

func hex(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}

// swatch renders text on a background of c, choosing a readable foreground
func swatch(c color.Color, text string) string {
	r, g, b, _ := c.RGBA()
	fg := lipgloss.ANSIColor(15)
	if (299*r+587*g+114*b)/1000 > 0x8000 {
		fg = lipgloss.ANSIColor(0)
	}
	return lipgloss.NewStyle().Background(hex(c)).Foreground(fg).Render(text)
}

// grid joins cells into rows of cols
func grid(cells []string, cols int) string {
	var rows []string
	for i := 0; i < len(cells); i += cols {
		end := i + cols
		if end > len(cells) {
			end = len(cells)
		}
		rows = append(rows, strings.Join(cells[i:end], ""))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
