package input

// Request is the immutable descriptor assembled from the command line.
type Request struct {
	Method     Method
	URL        string
	Header     []Field
	Body       map[string]string // nil when no data field was given
	Parameters []Field
}

type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodPatch   Method = "PATCH"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
	MethodTrace   Method = "TRACE"
	MethodConnect Method = "CONNECT"
)

var knownMethods = []Method{
	MethodGet,
	MethodPost,
	MethodPut,
	MethodDelete,
	MethodPatch,
	MethodHead,
	MethodOptions,
	MethodTrace,
	MethodConnect,
}

// HasBody reports whether at least one data field was given.
func (r *Request) HasBody() bool {
	return len(r.Body) > 0
}

type Field struct {
	Name  string
	Value string
}
