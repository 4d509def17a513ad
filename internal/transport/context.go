// Package transport provides the REST request/response contract shared by
// every backend-facing module. It offers one uniform call shape for text and
// binary payloads so higher components never branch on payload kind.
package transport

import "net/http"

// Connection names resolved against configured endpoint roots.
const (
	// ConnectionMBE is the mobile backend root every relative URI resolves against.
	ConnectionMBE = "FiFMBE"
)

// RequestContext describes one HTTP exchange against a named connection.
type RequestContext struct {
	Method         string
	URI            string // relative to the connection root
	ConnectionName string
	Headers        map[string]string
	Payload        string
	BinaryPayload  []byte
	RetryLimit     int // advisory; reattempts apply to connection failures only
}

// NewRequest creates a request context bound to the mobile backend connection.
func NewRequest(method, uri string) *RequestContext {
	return &RequestContext{
		Method:         method,
		URI:            uri,
		ConnectionName: ConnectionMBE,
		Headers:        make(map[string]string),
	}
}

// SetHeader sets a header, overriding any transport default of the same name.
func (r *RequestContext) SetHeader(name, value string) *RequestContext {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[name] = value
	return r
}

// WithPayload sets the text payload.
func (r *RequestContext) WithPayload(payload string) *RequestContext {
	r.Payload = payload
	return r
}

// WithBinaryPayload sets the binary payload.
func (r *RequestContext) WithBinaryPayload(payload []byte) *RequestContext {
	r.BinaryPayload = payload
	return r
}

// ResponseContext captures the outcome of one exchange. Nothing here
// persists beyond the call.
type ResponseContext struct {
	Status        int
	Headers       http.Header
	Payload       string
	BinaryPayload []byte
	ContentType   string
	RequestURL    string
}

// OK reports whether the response carries a 2xx status.
func (r *ResponseContext) OK() bool {
	return r.Status >= 200 && r.Status < 300
}
