//go:build !windows
// +build !windows

package host

import (
	"os/user"
	"strconv"

	"code.cloudfoundry.org/macsvc/errors"
	"golang.org/x/sys/unix"
)

// ConsoleUser returns the owner of the console device, which is the user
// logged in at the GUI.
func (h *Host) ConsoleUser() (ConsoleUser, error) {
	var stat unix.Stat_t
	if err := unix.Stat(h.consoleDevice(), &stat); err != nil {
		return ConsoleUser{}, errors.SafeWrap(err, "Failed to get a UID for the console user")
	}

	uid := int(stat.Uid)
	u, err := user.LookupId(strconv.Itoa(uid))
	if err != nil {
		return ConsoleUser{}, errors.SafeWrap(err, "Failed to get the name of the console user")
	}

	return ConsoleUser{UID: uid, Username: u.Username}, nil
}
