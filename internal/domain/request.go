package domain

import "strings"

// Method is an HTTP method supported by the composer.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
	MethodPatch  Method = "PATCH"
)

// Methods lists the supported methods in selector order.
func Methods() []Method {
	return []Method{MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch}
}

// ParseMethod decodes a method string case-insensitively.
// Unrecognized values fall back to GET.
func ParseMethod(s string) Method {
	if m, ok := InferMethod(s); ok {
		return m
	}
	return MethodGet
}

// InferMethod decodes a method string without a fallback, for the
// workspace index where inference failure is a valid state.
func InferMethod(s string) (Method, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "GET":
		return MethodGet, true
	case "POST":
		return MethodPost, true
	case "PUT":
		return MethodPut, true
	case "DELETE":
		return MethodDelete, true
	case "PATCH":
		return MethodPatch, true
	default:
		return "", false
	}
}

// AllowsBody reports whether a request body is sent for this method.
// GET and DELETE bodies are silently dropped at dispatch time.
func (m Method) AllowsBody() bool {
	return m == MethodPost || m == MethodPut || m == MethodPatch
}

// KeyValue is one editable parameter or header row.
type KeyValue struct {
	Key     string
	Value   string
	Enabled bool
}

// Request is the composed request state owned by the presentation layer.
// Dispatch consumes a snapshot of it and never mutates it.
type Request struct {
	Name    string
	Method  Method
	URL     string // may already carry a query string
	Params  []KeyValue
	Headers []KeyValue
	Body    string
}

// EffectiveHeaders returns the header rows that take part in the request:
// enabled rows with a non-empty key, in order. Duplicate keys are kept
// and sent as repeated headers.
func (r Request) EffectiveHeaders() []KeyValue {
	return effectiveRows(r.Headers)
}

// EffectiveParams returns the parameter rows that take part in the
// effective URL, filtered by the same rule as headers.
func (r Request) EffectiveParams() []KeyValue {
	return effectiveRows(r.Params)
}

func effectiveRows(rows []KeyValue) []KeyValue {
	out := make([]KeyValue, 0, len(rows))
	for _, kv := range rows {
		if kv.Enabled && kv.Key != "" {
			out = append(out, kv)
		}
	}
	return out
}

// Clone returns a deep copy of the request, used to snapshot composer
// state at the moment of dispatch.
func (r Request) Clone() Request {
	out := r
	out.Params = append([]KeyValue(nil), r.Params...)
	out.Headers = append([]KeyValue(nil), r.Headers...)
	return out
}
