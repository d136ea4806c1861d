package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// ===== Styles =====

var (
	colorGreen  = lipgloss.Color("42")
	colorRed    = lipgloss.Color("196")
	colorYellow = lipgloss.Color("220")
	colorBlue   = lipgloss.Color("39")
	colorGray   = lipgloss.Color("245")

	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	styleError   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleInfo    = lipgloss.NewStyle().Foreground(colorBlue)
	styleDim     = lipgloss.NewStyle().Foreground(colorGray)
	styleValue   = lipgloss.NewStyle().Bold(true)
	styleFile    = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)
	styleCommand = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
)

// ===== Messages =====

func printSuccess(format string, args ...any) {
	fmt.Fprintln(os.Stdout, styleSuccess.Render("✓")+" "+fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Fprintln(os.Stderr, styleError.Render("✗")+" "+fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	fmt.Fprintln(os.Stderr, styleWarning.Render("!")+" "+fmt.Sprintf(format, args...))
}

func printInfo(format string, args ...any) {
	fmt.Fprintln(os.Stdout, styleInfo.Render("→")+" "+fmt.Sprintf(format, args...))
}

func printDetail(format string, args ...any) {
	fmt.Fprintln(os.Stdout, "  "+styleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(path string) {
	fmt.Fprintln(os.Stdout, "  "+styleFile.Render(path))
}

// printNextStep suggests a follow-up command.
func printNextStep(command string) {
	fmt.Fprintln(os.Stdout, styleDim.Render("  next: ")+styleCommand.Render(command))
}

// printStats summarizes a pipeline run: node and edge counts plus
// whether the artifact came from the cache.
func printStats(miRNAs, genes, edges int, cached bool) {
	origin := styleDim.Render("computed")
	if cached {
		origin = styleDim.Render("cached")
	}
	fmt.Fprintf(os.Stdout, "  %s miRNAs, %s genes, %s edges (%s)\n",
		styleValue.Render(fmt.Sprint(miRNAs)),
		styleValue.Render(fmt.Sprint(genes)),
		styleValue.Render(fmt.Sprint(edges)),
		origin)
}
