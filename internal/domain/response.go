package domain

import "time"

// ResponseRecord is the immutable result of one dispatch. A transport
// failure is not an error to the caller: it is a record with StatusCode 0
// and the failure message in the body.
type ResponseRecord struct {
	StatusCode    int
	StatusLabel   string
	Elapsed       time.Duration
	Body          string
	BodyOversized bool
}

// Failed reports whether the record describes a transport failure
// rather than an HTTP response.
func (r ResponseRecord) Failed() bool {
	return r.StatusCode == 0
}
