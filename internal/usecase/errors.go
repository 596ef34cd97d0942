package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrSourceBlocked marks source failures caused by anti-bot blocking.
	ErrSourceBlocked = errors.New("source blocked the request")
	// ErrNoRecordsCollected fails a scrape run that produced an empty table.
	ErrNoRecordsCollected = errors.New("no player records collected")
)
