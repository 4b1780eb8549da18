package output

import "strings"

// Response is what the printers need to know about a received response.
type Response struct {
	Proto      string // e.g. "HTTP/1.1", "HTTP/2"
	StatusCode int
	Reason     string
	Header     []HeaderField
	Body       string
}

type HeaderField struct {
	Name  string
	Value string
}

// ContentType returns the first Content-Type header value, or "".
func (r *Response) ContentType() string {
	for _, field := range r.Header {
		if strings.EqualFold(field.Name, "Content-Type") {
			return field.Value
		}
	}
	return ""
}
