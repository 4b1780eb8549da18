package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

type PlainPrinter struct {
	writer io.Writer
}

func NewPlainPrinter(writer io.Writer) Printer {
	return &PlainPrinter{
		writer: writer,
	}
}

func (p *PlainPrinter) PrintStatusLine(proto string, statusCode int, reason string) error {
	fmt.Fprintf(p.writer, "%s %d %s\n", proto, statusCode, reason)
	return nil
}

func (p *PlainPrinter) PrintHeader(header []HeaderField) error {
	for _, field := range header {
		fmt.Fprintf(p.writer, "%s: %s\n", field.Name, field.Value)
	}
	fmt.Fprintln(p.writer)
	return nil
}

func (p *PlainPrinter) PrintBody(body string, contentType string) error {
	return writeBody(p.writer, body, body)
}

// writeBody writes rendered and terminates the output with a newline unless
// the displayed text already ends with one.
func writeBody(writer io.Writer, rendered, displayed string) error {
	if displayed == "" {
		return nil
	}
	if _, err := io.WriteString(writer, rendered); err != nil {
		return errors.Wrap(err, "printing response body")
	}
	if !strings.HasSuffix(displayed, "\n") {
		if _, err := io.WriteString(writer, "\n"); err != nil {
			return errors.Wrap(err, "printing response body")
		}
	}
	return nil
}
