package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleKey    = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleValue  = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)
)

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, styleTitle.Render(title))
}

func printField(w io.Writer, key, value string) {
	fmt.Fprintln(w, "  "+styleKey.Render(key)+styleValue.Render(value))
}

func printNumbers(w io.Writer, key string, values []float64) {
	list := make([]string, 0, len(values))
	for _, v := range values {
		list = append(list, styleNumber.Render(fmt.Sprintf("%g", v)))
	}
	printField(w, key, strings.Join(list, " "))
}
