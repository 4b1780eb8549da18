package output

import (
	"io"
)

type Printer interface {
	PrintStatusLine(proto string, statusCode int, reason string) error
	PrintHeader(header []HeaderField) error
	PrintBody(body string, contentType string) error
}

// NewPrinter picks the printer matching the formatting options.
func NewPrinter(writer io.Writer, options *Options) Printer {
	if !options.EnableFormat && !options.EnableColor {
		return NewPlainPrinter(writer)
	}
	return NewPrettyPrinter(PrettyPrinterConfig{
		Writer:       writer,
		EnableFormat: options.EnableFormat,
		EnableColor:  options.EnableColor,
	})
}

// Print writes the parts of resp selected by options.
func Print(writer io.Writer, resp *Response, options *Options) error {
	printer := NewPrinter(writer, options)
	if options.PrintResponseHeader {
		if err := printer.PrintStatusLine(resp.Proto, resp.StatusCode, resp.Reason); err != nil {
			return err
		}
		if err := printer.PrintHeader(resp.Header); err != nil {
			return err
		}
	}
	if options.PrintResponseBody {
		if err := printer.PrintBody(resp.Body, resp.ContentType()); err != nil {
			return err
		}
	}
	return nil
}
