package errors

type safeError struct {
	err error
	msg string
}

func SafeWrap(err error, msg string) error {
	if err == nil {
		return &safeError{msg: msg}
	}
	return &safeError{
		err: err,
		msg: msg,
	}
}

func (se *safeError) Error() string {
	if se.err == nil {
		return se.msg
	}
	return se.msg + ": " + se.err.Error()
}

func (se *safeError) safeError() string {
	if e, ok := se.err.(*safeError); ok {
		return se.msg + ": " + e.safeError()
	}
	return se.msg
}

func SafeError(err error) string {
	if e, ok := err.(*safeError); ok {
		return e.safeError()
	}
	return ""
}

// Cause returns the innermost error wrapped by SafeWrap.
func Cause(err error) error {
	for {
		se, ok := err.(*safeError)
		if !ok || se.err == nil {
			return err
		}
		err = se.err
	}
}

type notFoundError struct {
	name string
}

func (e *notFoundError) Error() string {
	return "Service not found: " + e.name
}

func NotFound(name string) error {
	return &notFoundError{name: name}
}

func IsNotFound(err error) bool {
	_, ok := Cause(err).(*notFoundError)
	return ok
}
