package util

type Error struct {
	Message string
}

func (err *Error) Error() string {
	return err.Message
}

var (
	ErrTimeout           = &Error{Message: "upstream call timed out"}
	ErrFilterUnavailable = &Error{Message: "content-type filter is not available on this surface"}
	ErrChannelNotFound   = &Error{Message: "channel could not be resolved"}
	ErrBadStatus         = &Error{Message: "upstream returned a non-200 status"}
)
