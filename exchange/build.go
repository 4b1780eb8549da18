package exchange

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/HexmosTech/httpie-lite/input"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// BuildRequest translates in into a request on client. Headers and query
// parameters keep their order and duplicates; query parameters are appended
// to whatever query the URL already has.
func BuildRequest(ctx context.Context, client *resty.Client, in *input.Request, options *Options) (*resty.Request, error) {
	r := client.R()
	r.Method = string(in.Method)
	r.URL = appendQuery(in.URL, in.Parameters)

	for _, field := range in.Header {
		r.Header.Add(field.Name, field.Value)
	}

	if in.HasBody() {
		body, err := buildJSONBody(in)
		if err != nil {
			return nil, err
		}
		if r.Header.Get("Content-Type") == "" {
			r.Header.Set("Content-Type", "application/json")
		}
		r.SetBody(body)
		if !carriesPayload(in.Method) {
			ctx = context.WithValue(ctx, payloadKey{}, body)
		}
	}
	r.SetContext(ctx)

	if options.Auth.Enabled {
		r.SetBasicAuth(options.Auth.UserName, options.Auth.Password)
	}

	return r, nil
}

func buildJSONBody(in *input.Request) ([]byte, error) {
	body, err := json.Marshal(in.Body)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling JSON of HTTP body")
	}
	return body, nil
}

// appendQuery adds params to rawURL in the given order. url.Values would sort
// them by key.
func appendQuery(rawURL string, params []input.Field) string {
	if len(params) == 0 {
		return rawURL
	}

	pairs := make([]string, 0, len(params))
	for _, field := range params {
		pairs = append(pairs, url.QueryEscape(field.Name)+"="+url.QueryEscape(field.Value))
	}
	query := strings.Join(pairs, "&")

	base, fragment, hasFragment := strings.Cut(rawURL, "#")
	switch {
	case !strings.Contains(base, "?"):
		base += "?" + query
	case strings.HasSuffix(base, "?"), strings.HasSuffix(base, "&"):
		base += query
	default:
		base += "&" + query
	}
	if hasFragment {
		return base + "#" + fragment
	}
	return base
}

// resty drops the body of HEAD and OPTIONS requests; attachPayload puts it
// back on the raw request.
type payloadKey struct{}

func carriesPayload(method input.Method) bool {
	return method != input.MethodHead && method != input.MethodOptions
}

func attachPayload(_ *resty.Client, req *http.Request) error {
	body, ok := req.Context().Value(payloadKey{}).([]byte)
	if !ok || req.Body != nil {
		return nil
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body)), nil
	}
	return nil
}
