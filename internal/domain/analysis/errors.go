package analysis

import "fmt"

const failedPrefix = "AI analysis failed."

// FailedError is the single failure kind of the pipeline. It covers network,
// authentication, quota and malformed-response failures alike; callers are not
// given a way to tell them apart.
type FailedError struct {
	Message string
}

func (e *FailedError) Error() string { return e.Message }

// NewFailedError wraps a model invocation failure.
func NewFailedError(cause error) *FailedError {
	return &FailedError{Message: fmt.Sprintf("%s Details: %v", failedPrefix, cause)}
}

// NewParseFailedError wraps a response that could not be parsed as JSON.
func NewParseFailedError(cause error) *FailedError {
	return &FailedError{Message: fmt.Sprintf("%s The model response was not valid JSON. Details: %v", failedPrefix, cause)}
}

// FetchError reports a failed URL retrieval. The cause is shown to the user
// as-is.
type FetchError struct {
	Cause string
}

func (e *FetchError) Error() string { return "Error fetching URL: " + e.Cause }
