package privatrates

import "fmt"

type (
	// ValidationError reports bad user input before any network activity.
	ValidationError struct {
		Message string
	}

	// DataError reports a non-200 status from the archive API.
	DataError struct {
		StatusCode int
	}

	// NetworkError wraps a transport-level failure: DNS, connect,
	// timeout or an unreadable/malformed response body.
	NetworkError struct {
		Err error
	}
)

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *DataError) Error() string {
	return fmt.Sprintf("exchange rate API responded with status %d", e.StatusCode)
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("failed to reach exchange rate API: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
