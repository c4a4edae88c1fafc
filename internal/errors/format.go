package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleError  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("167"))
	styleCode   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	styleLoc    = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	styleHint   = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	styleGutter = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// colorEnabled controls whether Format styles its output.
var colorEnabled = true

// DisableColors turns off styling, e.g. for --no-color or piped output.
func DisableColors() { colorEnabled = false }

// EnableColors turns styling back on.
func EnableColors() { colorEnabled = true }

func paint(s lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return s.Render(text)
}

// Format renders the error for a terminal.
func (e *Error) Format() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(paint(styleError, "ERROR"))
	b.WriteString(" ")
	if e.Code != "" {
		b.WriteString(paint(styleCode, e.Code+":"))
		b.WriteString(" ")
	}
	b.WriteString(e.Message)
	b.WriteString("\n\n")

	if e.Location != nil {
		b.WriteString("  ")
		b.WriteString(paint(styleLoc, e.Location.String()))
		b.WriteString("\n\n")
		e.formatContext(&b)
	}

	if e.Wrapped != nil {
		b.WriteString("  ")
		b.WriteString(e.Wrapped.Error())
		b.WriteString("\n\n")
	}

	if e.Detail != "" {
		for _, line := range wrapText(e.Detail, 70) {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if e.Suggestion != "" {
		b.WriteString("  ")
		b.WriteString(paint(styleHint, "Hint: "))
		b.WriteString(e.Suggestion)
		b.WriteString("\n\n")
	}

	return b.String()
}

func (e *Error) formatContext(b *strings.Builder) {
	if len(e.Context) == 0 {
		return
	}
	first := e.Location.Line - 2
	if first < 1 {
		first = 1
	}
	for i, line := range e.Context {
		n := first + i
		marker := "    "
		if n == e.Location.Line {
			marker = "  " + paint(styleError, "→") + " "
		}
		fmt.Fprintf(b, "%s%4d%s%s\n", marker, n, paint(styleGutter, " │ "), line)
		if n == e.Location.Line && e.Location.Column > 0 {
			fmt.Fprintf(b, "        %s%s%s\n", paint(styleGutter, " │ "), strings.Repeat(" ", e.Location.Column-1), paint(styleError, "^"))
		}
	}
	b.WriteString("\n")
}

// FormatCompact returns a single-line form, suitable for logs.
func (e *Error) FormatCompact() string {
	var b strings.Builder
	if e.Location != nil {
		b.WriteString(e.Location.String())
		b.WriteString(": ")
	}
	b.WriteString(e.Error())
	return b.String()
}

func wrapText(text string, width int) []string {
	if text == "" {
		return nil
	}
	if len(text) <= width {
		return []string{text}
	}

	var lines []string
	var current strings.Builder
	for _, word := range strings.Fields(text) {
		if current.Len() > 0 && current.Len()+len(word)+1 > width {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}

// Print writes err to w, formatted if it is an *Error.
func Print(w io.Writer, err error) {
	var e *Error
	if stderrors.As(err, &e) {
		fmt.Fprint(w, e.Format())
		return
	}
	fmt.Fprintf(w, "\n%s %s\n\n", paint(styleError, "ERROR"), err.Error())
}
