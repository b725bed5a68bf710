package openmeteo

import "fmt"

// UpstreamError reports a failed request to the Open-Meteo API: either a
// transport failure or a non-2xx response.
type UpstreamError struct {
	Endpoint   string
	StatusCode int // 0 for transport failures
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("open-meteo %s returned status %d: %s", e.Endpoint, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("open-meteo %s request failed: %v", e.Endpoint, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// MalformedResponseError reports a 2xx response whose body could not be
// decoded as the expected JSON shape.
type MalformedResponseError struct {
	Endpoint string
	Err      error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("open-meteo %s returned malformed response: %v", e.Endpoint, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
