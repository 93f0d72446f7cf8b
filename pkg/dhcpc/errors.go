package dhcpc

import (
	"github.com/pkg/errors"
)

type Kind int

const (
	ConfigError Kind = iota + 1
	IOError
	ProcessError
)

func (k Kind) String() string {
	switch k {
	case ConfigError:
		return "config"
	case IOError:
		return "io"
	case ProcessError:
		return "process"
	}
	return "unknown"
}

var ErrNotFound = errors.New("dhcp client not found")

// Error carries the kind of failure of a client operation.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return e.Op + ": " + e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: errors.WithStack(err)}
}

func configErrorf(op, format string, v ...interface{}) error {
	return &Error{Kind: ConfigError, Op: op, Err: errors.Errorf(format, v...)}
}

// KindOf returns the kind of err, zero if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsConfig(err error) bool {
	return KindOf(err) == ConfigError
}

func IsIO(err error) bool {
	return KindOf(err) == IOError
}

func IsProcess(err error) bool {
	return KindOf(err) == ProcessError
}
