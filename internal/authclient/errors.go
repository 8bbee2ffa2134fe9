package authclient

import "errors"

// Kind categorizes an auth failure. Every error surfaced by this
// package resolves to exactly one kind; nothing escapes uncategorized.
type Kind int

const (
	// KindValidation: the request failed local checks, no network call was made.
	KindValidation Kind = iota + 1
	// KindInvalidCredentials: the server rejected the email/password pair.
	KindInvalidCredentials
	// KindConflict: the server reported a duplicate identity.
	KindConflict
	// KindConnection: the request never got a response.
	KindConnection
	// KindServer: any other non-2xx response.
	KindServer
)

// Error is a categorized auth failure carrying a message fit for
// display. The caller surfaces Message and lets the learner retry;
// there is no automatic retry.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// KindOf extracts the Kind from an error chain, or 0 if the error did
// not come from this package.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return 0
}
