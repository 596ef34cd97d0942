package transfermarkt

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

// Failures are classified with crerr marks, so match them with crerr.Is.
var (
	// ErrBlocked is returned for HTTP 403, the source's anti-bot response.
	ErrBlocked = crerr.New("transfermarkt blocked the request")
	// ErrHTTPStatus marks every other non-200 response. Use errors.As with
	// *HTTPStatusError to read the status code.
	ErrHTTPStatus = crerr.New("transfermarkt unexpected status")
	// ErrConnection covers transport failures and timeouts.
	ErrConnection = crerr.New("transfermarkt connection failure")
)

type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("GET %s: status %d", e.URL, e.StatusCode)
}
