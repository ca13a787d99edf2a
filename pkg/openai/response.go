package openai

// Response is the decoded JSON body of an API reply, keyed by top-level
// field. The shape varies by endpoint and by success or failure, so values
// stay dynamically typed. Remote failures (bad key, rate limit, bad request)
// arrive here as ordinary decoded bodies, never as Go errors; callers check
// the shape themselves.
type Response map[string]any

// ErrorMessage extracts the message of an embedded API error, if the body
// carries one. It is a convenience for the error-key convention and does not
// change what Do returns.
func (r Response) ErrorMessage() (string, bool) {
	switch e := r["error"].(type) {
	case map[string]any:
		msg, ok := e["message"].(string)
		return msg, ok
	case string:
		return e, true
	default:
		return "", false
	}
}
