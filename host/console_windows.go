package host

import "code.cloudfoundry.org/macsvc/errors"

func (h *Host) ConsoleUser() (ConsoleUser, error) {
	return ConsoleUser{}, errors.SafeWrap(nil, "console users are only available on unix hosts")
}
