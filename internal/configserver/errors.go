package configserver

import "fmt"

// ErrorKind classifies a UserError.
type ErrorKind int

const (
	// KindResourceConflict reports a config server that already exists.
	KindResourceConflict ErrorKind = iota + 1
	// KindResourceNotFound reports a missing config server.
	KindResourceNotFound
	// KindInvalidArgument reports parameters rejected before any client call.
	KindInvalidArgument
)

func (k ErrorKind) String() string {
	switch k {
	case KindResourceConflict:
		return "ResourceConflict"
	case KindResourceNotFound:
		return "ResourceNotFound"
	case KindInvalidArgument:
		return "InvalidArgument"
	}
	return "Unknown"
}

// UserError is a failure the user can act on. Its message is shown verbatim.
type UserError struct {
	Kind    ErrorKind
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// Is matches another UserError of the same kind; a target without a message matches any message.
func (e *UserError) Is(target error) bool {
	t, ok := target.(*UserError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// Sentinels for errors.Is; each matches any UserError of its kind.
var (
	ErrResourceConflict = &UserError{Kind: KindResourceConflict}
	ErrResourceNotFound = &UserError{Kind: KindResourceNotFound}
	ErrInvalidArgument  = &UserError{Kind: KindInvalidArgument}
)

func alreadyExists(name string) *UserError {
	return &UserError{
		Kind:    KindResourceConflict,
		Message: fmt.Sprintf("Config server '%s' already exists.", name),
	}
}

func notFound(name string) *UserError {
	return &UserError{
		Kind:    KindResourceNotFound,
		Message: fmt.Sprintf("Config server '%s' not found.", name),
	}
}

func invalidArgument(format string, args ...interface{}) *UserError {
	return &UserError{
		Kind:    KindInvalidArgument,
		Message: fmt.Sprintf(format, args...),
	}
}
