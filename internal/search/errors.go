package search

import "fmt"

// Builder-time validation errors. These are returned synchronously from
// BuildRequest and never reach the network.

// UnknownProviderError reports a search aimed at an endpoint family that
// never registered.
type UnknownProviderError struct {
	Name string
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("unknown search provider: %s", e.Name)
}

// UnknownCollectionError reports a scripture collection name outside the
// enumerated volume set.
type UnknownCollectionError struct {
	Name string
}

func (e *UnknownCollectionError) Error() string {
	return fmt.Sprintf("unknown scripture collection: %s", e.Name)
}

// InvalidDateRangeError reports a conference date range whose start falls
// after its end, or a date that is not ISO-8601.
type InvalidDateRangeError struct {
	Start string
	End   string
}

func (e *InvalidDateRangeError) Error() string {
	return fmt.Sprintf("invalid date range: %s .. %s", e.Start, e.End)
}

// ErrorKind classifies executor-time failures.
type ErrorKind string

const (
	KindTransportError    ErrorKind = "transport_error"
	KindHTTPError         ErrorKind = "http_error"
	KindMalformedResponse ErrorKind = "malformed_response"
	KindCancelled         ErrorKind = "cancelled"
)

// ErrorInfo is an executor-time failure carried on a Result instead of a Go
// error, so aggregate callers keep their successful results when one search
// fails. Message names the family and status only; raw URLs and credentials
// never appear here.
type ErrorInfo struct {
	Kind    ErrorKind `json:"kind"`
	Status  int       `json:"status,omitempty"`
	Domain  string    `json:"domain"`
	Message string    `json:"message"`
}

func (e *ErrorInfo) Error() string {
	return fmt.Sprintf("%s: %s", e.Domain, e.Message)
}
