package steam

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindInvalidArgument ErrorKind = iota + 1
	KindNotFound
	KindAccessDenied
	KindUpstreamInvalid
	KindTransport
)

func (kind ErrorKind) String() string {
	switch kind {
	case KindInvalidArgument:
		return "invalid argument"
	case KindNotFound:
		return "not found"
	case KindAccessDenied:
		return "access denied"
	case KindUpstreamInvalid:
		return "upstream invalid"
	case KindTransport:
		return "transport failure"
	default:
		return "unknown"
	}
}

const (
	msgIDNotProvided      = "ID not provided."
	msgIDNotFound         = "ID not found."
	msgIDsNotProvided     = "IDs not provided."
	msgAppIDNotProvided   = "AppID not provided."
	msgGameNotFound       = "Game not found."
	msgCountTooSmall      = "Count must be larger than 1"
	msgNoAchievementNames = "You must provide an array of achievement names."
	msgProfilePrivate     = "Profile not found or private"
	msgAppNotFound        = "App not found."
	msgFilterNotProvided  = "Filter not provided."
	msgInvalidResponse    = "Response from steam invalid."
)

// Sentinel errors for use with errors.Is. Any *Error matches the sentinel
// of its kind.
var (
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument, Message: "invalid argument"}
	ErrNotFound        = &Error{Kind: KindNotFound, Message: "not found"}
	ErrAccessDenied    = &Error{Kind: KindAccessDenied, Message: msgProfilePrivate}
	ErrUpstreamInvalid = &Error{Kind: KindUpstreamInvalid, Message: msgInvalidResponse}
	ErrTransport       = &Error{Kind: KindTransport, Message: "request failed"}

	ErrAPIKeyMissing = errors.New("no API key found, supply it as argument")
)

type Error struct {
	Kind    ErrorKind
	Message string
	// StatusCode is the HTTP status of the response, only set for transport
	// errors that got as far as receiving one.
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.Kind != KindTransport {
		return e.Message
	}

	msg := e.Message
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}

	return msg
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsAccessDenied(err error) bool {
	return errors.Is(err, ErrAccessDenied)
}

func invalidArgument(message string) error {
	return &Error{Kind: KindInvalidArgument, Message: message}
}

func notFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

func accessDenied() error {
	return &Error{Kind: KindAccessDenied, Message: msgProfilePrivate}
}

func upstreamInvalid() error {
	return &Error{Kind: KindUpstreamInvalid, Message: msgInvalidResponse}
}

func transportError(endpoint string, statusCode int, err error) error {
	return &Error{
		Kind:       KindTransport,
		Message:    fmt.Sprintf("request to %s failed", endpoint),
		StatusCode: statusCode,
		Err:        err,
	}
}
