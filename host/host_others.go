//go:build !darwin
// +build !darwin

package host

import (
	"runtime"

	"code.cloudfoundry.org/macsvc/errors"
)

func (*Host) CheckRequirements() error {
	return errors.SafeWrap(nil, "launchd services can only be managed on macOS")
}

func (h *Host) Version() (string, error) {
	return runtime.GOOS, nil
}
