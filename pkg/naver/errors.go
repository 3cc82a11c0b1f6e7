package naver

import "fmt"

// ParamError reports a caller-supplied parameter outside its allowed domain.
// These are returned to the agent as text so it can self-correct.
type ParamError struct {
	Name   string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Name, e.Reason)
}

// UpstreamError reports a non-success HTTP status from the Naver API.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("naver api error (http %d): %s", e.StatusCode, e.Body)
}

// MalformedResponseError reports an upstream payload missing expected fields.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed naver api response: %s", e.Reason)
}
