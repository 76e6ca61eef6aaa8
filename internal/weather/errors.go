package weather

import "fmt"

// UpstreamError reports a non-success response from the weather provider.
// The upstream status and body are preserved so the proxy can surface them
// verbatim in its 502 envelope.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s request failed: %d %s", e.Provider, e.StatusCode, e.Body)
}
