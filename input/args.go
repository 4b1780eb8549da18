package input

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// UsageError reports a command line that cannot name a request, such as one
// without a URL.
type UsageError string

func (e *UsageError) Error() string {
	return string(*e)
}

func newUsageError(message string) error {
	u := UsageError(message)
	return errors.WithStack(&u)
}

// InvalidMethodError is returned when an explicit method is not one of the
// supported verbs.
type InvalidMethodError struct {
	Method string
}

func (e *InvalidMethodError) Error() string {
	return fmt.Sprintf("invalid HTTP method: %s", e.Method)
}

// ParseArgs assembles a request from the positional arguments
// `[METHOD] URL [REQUEST_ITEM ...]`.
func ParseArgs(args []string) (*Request, error) {
	var argMethod string
	var argURL string
	var argItems []string
	switch len(args) {
	case 0:
		return nil, newUsageError("URL is required")
	case 1:
		argURL = args[0]
	default:
		if IsMethod(args[0]) {
			argMethod = args[0]
			argURL = args[1]
			argItems = args[2:]
		} else {
			argURL = args[0]
			argItems = args[1:]
		}
	}

	in := Request{}
	for _, arg := range argItems {
		if err := parseItem(arg, &in); err != nil {
			return nil, err
		}
	}

	method, err := ResolveMethod(argMethod, in.HasBody())
	if err != nil {
		return nil, err
	}
	in.Method = method
	in.URL = NormalizeURL(argURL)

	return &in, nil
}

func parseItem(s string, in *Request) error {
	item, err := ClassifyItem(s)
	if err != nil {
		return errors.WithStack(err)
	}
	switch item := item.(type) {
	case HeaderItem:
		in.Header = append(in.Header, item.Field())
	case DataItem:
		if in.Body == nil {
			in.Body = map[string]string{}
		}
		in.Body[item.Key] = item.Value
	case QueryItem:
		in.Parameters = append(in.Parameters, item.Field())
	default:
		return errors.Errorf("unknown request item: %s", s)
	}
	return nil
}

// IsMethod reports whether s names a supported HTTP method, ignoring case.
func IsMethod(s string) bool {
	_, ok := lookupMethod(s)
	return ok
}

func lookupMethod(s string) (Method, bool) {
	upper := Method(strings.ToUpper(s))
	for _, m := range knownMethods {
		if m == upper {
			return m, true
		}
	}
	return "", false
}

// ResolveMethod validates an explicit method or, when explicit is empty,
// guesses one from the presence of body fields.
func ResolveMethod(explicit string, hasBody bool) (Method, error) {
	if explicit != "" {
		return parseMethod(explicit)
	}
	return guessMethod(hasBody), nil
}

func parseMethod(s string) (Method, error) {
	method, ok := lookupMethod(s)
	if !ok {
		return "", errors.WithStack(&InvalidMethodError{Method: s})
	}
	return method, nil
}

func guessMethod(hasBody bool) Method {
	if hasBody {
		return MethodPost
	}
	return MethodGet
}

// NormalizeURL adds the scheme, and for ":port" shorthands the host, that the
// user left out.
func NormalizeURL(s string) string {
	const (
		defaultScheme = "http"
		defaultHost   = "localhost"
	)

	switch {
	// ex) ://example.com
	case strings.HasPrefix(s, "://"):
		return defaultScheme + s
	// ex) :8080/hello
	case strings.HasPrefix(s, ":"):
		return defaultScheme + "://" + defaultHost + s
	// ex) example.com/hello
	case !strings.Contains(s, "://"):
		return defaultScheme + "://" + s
	default:
		return s
	}
}
