package glpi

import "fmt"

// RemoteCallError is the single failure type for every GLPI call: a non-2xx
// HTTP status, or a transport failure (in which case StatusCode is 0 and Err
// holds the cause).
type RemoteCallError struct {
	Verb       string
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *RemoteCallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Verb, e.URL, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Verb, e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s %s: status %d", e.Verb, e.URL, e.StatusCode)
}

func (e *RemoteCallError) Unwrap() error {
	return e.Err
}
