package main

import (
	"fmt"
	"io"
	"os"
)

// ANSI colours for terminal output
const (
	ansiGreen  = "\033[0;32m"
	ansiRed    = "\033[0;31m"
	ansiYellow = "\033[1;33m"
	ansiBlue   = "\033[0;34m"
	ansiReset  = "\033[0m"
)

var uiOut io.Writer = os.Stdout

func printStyled(colour, symbol, format string, a ...interface{}) {
	fmt.Fprintf(uiOut, "%s%s %s%s\n", colour, symbol, fmt.Sprintf(format, a...), ansiReset)
}

func PrintInfo(format string, a ...interface{})    { printStyled(ansiBlue, "ℹ", format, a...) }
func PrintSuccess(format string, a ...interface{}) { printStyled(ansiGreen, "✓", format, a...) }
func PrintWarning(format string, a ...interface{}) { printStyled(ansiYellow, "⚠", format, a...) }
func PrintError(format string, a ...interface{})   { printStyled(ansiRed, "✗", format, a...) }

func PrintHeader(title string) {
	fmt.Fprintf(uiOut, "\n%s=== %s ===%s\n", ansiYellow, title, ansiReset)
}
