package agro

import (
	"errors"
	"fmt"

	"agro-weather/internal/providers/openmeteo"
	"agro-weather/internal/region"
)

// Error kinds reported in the uniform error payload at the dispatcher
// boundaries (HTTP and MCP).
const (
	KindValidation        = "validation"
	KindUpstream          = "upstream"
	KindMalformedResponse = "malformed_response"
	KindInternal          = "internal"
)

// RequestError reports a tool parameter outside its documented range.
type RequestError struct {
	Param  string
	Reason string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

// ErrorKind classifies err per the service error taxonomy. Unknown errors
// are internal.
func ErrorKind(err error) string {
	var (
		verr *region.ValidationError
		rerr *RequestError
		uerr *openmeteo.UpstreamError
		merr *openmeteo.MalformedResponseError
	)
	switch {
	case errors.As(err, &verr), errors.As(err, &rerr):
		return KindValidation
	case errors.As(err, &uerr):
		return KindUpstream
	case errors.As(err, &merr):
		return KindMalformedResponse
	default:
		return KindInternal
	}
}
