package letterboxd

import (
	"errors"
	"fmt"
)

// Fetch-level errors returned by Fetcher.
var (
	// ErrNotFound is returned when the upstream answers 404.
	ErrNotFound = errors.New("page not found")

	// ErrFetch covers every other transport, timeout or status failure.
	ErrFetch = errors.New("fetch error")
)

// Watchlist-level errors. A *WatchlistError matches exactly one of these
// with errors.Is.
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrUserNotFound   = errors.New("user not found")
	ErrFetchFailed    = errors.New("fetch failed")
	ErrEmptyOrPrivate = errors.New("watchlist is empty or not public")
)

// Kind is the stable discriminant of a watchlist failure.
type Kind string

const (
	KindInvalidInput   Kind = "invalid_input"
	KindUserNotFound   Kind = "user_not_found"
	KindFetchFailed    Kind = "fetch_failed"
	KindEmptyOrPrivate Kind = "empty_or_private"
)

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidInput:
		return ErrInvalidInput
	case KindUserNotFound:
		return ErrUserNotFound
	case KindEmptyOrPrivate:
		return ErrEmptyOrPrivate
	default:
		return ErrFetchFailed
	}
}

// WatchlistError is the terminal failure of one Watchlist call.
type WatchlistError struct {
	Kind     Kind
	Username string
	Err      error // underlying cause, nil for invalid_input and empty_or_private
}

func newWatchlistError(kind Kind, username string, cause error) *WatchlistError {
	return &WatchlistError{Kind: kind, Username: username, Err: cause}
}

func (e *WatchlistError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("watchlist %q: %v", e.Username, e.Kind.sentinel())
	}
	return fmt.Sprintf("watchlist %q: %v: %v", e.Username, e.Kind.sentinel(), e.Err)
}

// Message returns the text shown to end users.
func (e *WatchlistError) Message() string {
	switch e.Kind {
	case KindInvalidInput:
		return "Please enter a username."
	case KindUserNotFound:
		return fmt.Sprintf("User %q not found on Letterboxd.", e.Username)
	case KindEmptyOrPrivate:
		return fmt.Sprintf("Watchlist for %q is empty or not public.", e.Username)
	default:
		return "Failed to fetch watchlist. Please try again."
	}
}

func (e *WatchlistError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func (e *WatchlistError) Unwrap() error { return e.Err }

// StatusError reports a non-2xx response from the upstream site.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %d", e.URL, e.StatusCode)
}

// KindOf extracts the discriminant from err, reporting false for errors that
// did not come from Watchlist.
func KindOf(err error) (Kind, bool) {
	var we *WatchlistError
	if errors.As(err, &we) {
		return we.Kind, true
	}
	return "", false
}
