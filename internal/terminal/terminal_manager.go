package terminal

import (
	"fmt"
	"os"

	"github.com/mitchellh/colorstring"
	"golang.org/x/term"
)

// Status output for the pipeline. Colour markup is rendered only when the
// target stream is an actual terminal; redirected output stays plain so the
// fixtures can be generated from scripts without escape noise.

var plain = colorstring.Colorize{
	Colors:  colorstring.DefaultColors,
	Disable: true,
	Reset:   true,
}

func render(stream *os.File, s string) string {
	if term.IsTerminal(int(stream.Fd())) {
		return colorstring.Color(s)
	}
	return plain.Color(s)
}

// Successf prints a green tick line to stdout.
func Successf(format string, a ...any) {
	fmt.Println(render(os.Stdout, "[green]✓ "+fmt.Sprintf(format, a...)))
}

// Detailf prints an indented detail line to stdout, under a Successf header.
func Detailf(format string, a ...any) {
	fmt.Println("   " + fmt.Sprintf(format, a...))
}

// Failf prints a red failure line to stderr.
func Failf(format string, a ...any) {
	fmt.Fprintln(os.Stderr, render(os.Stderr, "[red]✗ "+fmt.Sprintf(format, a...)))
}
