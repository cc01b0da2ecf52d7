package rest

import (
	"fmt"
	"net/http"

	"taskboard/internal/service"
)

// RequestError describes a call that did not complete or came back with an
// error status. It always matches service.ErrNetwork.
type RequestError struct {
	Method     string
	URL        string
	RequestID  string
	StatusCode int // 0 when no response was received
	Body       string
	Err        error
}

func (e *RequestError) Error() string {
	head := fmt.Sprintf("%s %s", e.Method, e.URL)
	if e.RequestID != "" {
		head += " (request " + e.RequestID + ")"
	}
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("%s: %d %s: %v", head, e.StatusCode, http.StatusText(e.StatusCode), e.Err)
	case e.StatusCode != 0 && e.Body != "":
		return fmt.Sprintf("%s: %d %s: %s", head, e.StatusCode, http.StatusText(e.StatusCode), e.Body)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: %d %s", head, e.StatusCode, http.StatusText(e.StatusCode))
	default:
		return fmt.Sprintf("%s: %v", head, e.Err)
	}
}

func (e *RequestError) Unwrap() error { return e.Err }

// Is reports a match against service.ErrNetwork.
func (e *RequestError) Is(target error) bool {
	return target == service.ErrNetwork
}
