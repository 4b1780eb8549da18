package exchange

import (
	"context"
	"log/slog"
	"net/http"
	"sort"

	"code.cloudfoundry.org/bytefmt"
	"github.com/HexmosTech/httpie-lite/input"
	"github.com/HexmosTech/httpie-lite/output"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Send performs in on client and captures the whole response.
func Send(ctx context.Context, client *resty.Client, in *input.Request, options *Options, logger *slog.Logger) (*output.Response, error) {
	r, err := BuildRequest(ctx, client, in, options)
	if err != nil {
		return nil, err
	}

	logger.Debug("sending request",
		"method", in.Method,
		"url", in.URL,
		"headers", len(in.Header),
		"params", len(in.Parameters),
		"body", in.HasBody())

	resp, err := r.Send()
	if err != nil {
		return nil, errors.Wrap(err, "sending HTTP request")
	}

	body := resp.Body()
	logger.Debug("received response",
		"status", resp.StatusCode(),
		"proto", resp.Proto(),
		"size", bytefmt.ByteSize(uint64(len(body))),
		"elapsed", resp.Time())

	return &output.Response{
		Proto:      formatVersion(resp.RawResponse),
		StatusCode: resp.StatusCode(),
		Reason:     http.StatusText(resp.StatusCode()),
		Header:     headerFields(resp.Header()),
		Body:       string(body),
	}, nil
}

func formatVersion(resp *http.Response) string {
	if resp == nil {
		return "HTTP/?"
	}
	switch {
	case resp.ProtoMajor == 0 && resp.ProtoMinor == 9:
		return "HTTP/0.9"
	case resp.ProtoMajor == 1 && resp.ProtoMinor == 0:
		return "HTTP/1.0"
	case resp.ProtoMajor == 1 && resp.ProtoMinor == 1:
		return "HTTP/1.1"
	case resp.ProtoMajor == 2:
		return "HTTP/2"
	case resp.ProtoMajor == 3:
		return "HTTP/3"
	default:
		return "HTTP/?"
	}
}

// headerFields flattens header sorted by name; values of one name keep the
// order they were received in.
func headerFields(header http.Header) []output.HeaderField {
	var names []string
	for name := range header {
		names = append(names, name)
	}
	sort.Strings(names)

	var fields []output.HeaderField
	for _, name := range names {
		for _, value := range header[name] {
			fields = append(fields, output.HeaderField{Name: name, Value: value})
		}
	}
	return fields
}
