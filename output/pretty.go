package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
)

type PrettyPrinter struct {
	writer        io.Writer
	plain         Printer
	enableFormat  bool
	enableColor   bool
	aurora        aurora.Aurora
	headerPalette *HeaderPalette
	jsonPalette   *JSONPalette
}

type PrettyPrinterConfig struct {
	Writer       io.Writer
	EnableFormat bool
	EnableColor  bool
}

type HeaderPalette struct {
	Success   aurora.Color
	Redirect  aurora.Color
	Error     aurora.Color
	FieldName aurora.Color
}

var defaultHeaderPalette = HeaderPalette{
	Success:   aurora.GreenFg | aurora.BoldFm,
	Redirect:  aurora.YellowFg | aurora.BoldFm,
	Error:     aurora.RedFg | aurora.BoldFm,
	FieldName: aurora.FaintFm,
}

type JSONPalette struct {
	Key     aurora.Color
	String  aurora.Color
	Number  aurora.Color
	Boolean aurora.Color
	Null    aurora.Color
}

var defaultJSONPalette = JSONPalette{
	Key:     aurora.CyanFg | aurora.BoldFm,
	String:  aurora.GreenFg,
	Number:  aurora.MagentaFg,
	Boolean: aurora.YellowFg,
	Null:    aurora.RedFg,
}

func NewPrettyPrinter(config PrettyPrinterConfig) Printer {
	return &PrettyPrinter{
		writer:        config.Writer,
		plain:         NewPlainPrinter(config.Writer),
		enableFormat:  config.EnableFormat,
		enableColor:   config.EnableColor,
		aurora:        aurora.NewAurora(config.EnableColor),
		headerPalette: &defaultHeaderPalette,
		jsonPalette:   &defaultJSONPalette,
	}
}

func (p *PrettyPrinter) PrintStatusLine(proto string, statusCode int, reason string) error {
	line := fmt.Sprintf("%s %d %s", proto, statusCode, reason)
	fmt.Fprintf(p.writer, "%s\n", p.aurora.Colorize(line, p.statusColor(statusCode)))
	return nil
}

func (p *PrettyPrinter) statusColor(statusCode int) aurora.Color {
	switch {
	case 200 <= statusCode && statusCode < 300:
		return p.headerPalette.Success
	case 300 <= statusCode && statusCode < 400:
		return p.headerPalette.Redirect
	default:
		return p.headerPalette.Error
	}
}

func (p *PrettyPrinter) PrintHeader(header []HeaderField) error {
	for _, field := range header {
		fmt.Fprintf(p.writer, "%s: %s\n",
			p.aurora.Colorize(field.Name, p.headerPalette.FieldName),
			field.Value)
	}
	fmt.Fprintln(p.writer)
	return nil
}

func isJSON(contentType string) bool {
	return strings.Contains(contentType, "json")
}

func (p *PrettyPrinter) PrintBody(body string, contentType string) error {
	// Fallback to PlainPrinter when the body is not JSON
	if !isJSON(contentType) {
		return p.plain.PrintBody(body, contentType)
	}

	displayed := body
	if p.enableFormat {
		formatted, ok := formatJSON(body)
		if !ok {
			// Malformed bodies are shown as received.
			return p.plain.PrintBody(body, contentType)
		}
		displayed = formatted
	}

	rendered := displayed
	if p.enableColor {
		rendered = p.colorizeJSON(displayed)
	}
	return writeBody(p.writer, rendered, displayed)
}

func (p *PrettyPrinter) colorizeJSON(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, token := range TokenizeJSON(s) {
		color, styled := p.tokenColor(token.Kind)
		if !styled {
			b.WriteString(token.Text)
			continue
		}
		b.WriteString(p.aurora.Colorize(token.Text, color).String())
	}
	return b.String()
}

func (p *PrettyPrinter) tokenColor(kind TokenKind) (aurora.Color, bool) {
	switch kind {
	case KeyToken:
		return p.jsonPalette.Key, true
	case StringToken:
		return p.jsonPalette.String, true
	case NumberToken:
		return p.jsonPalette.Number, true
	case TrueToken, FalseToken:
		return p.jsonPalette.Boolean, true
	case NullToken:
		return p.jsonPalette.Null, true
	default:
		return 0, false
	}
}
