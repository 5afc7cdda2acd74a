package host

import (
	"fmt"
	"os/exec"
	"strings"

	"code.cloudfoundry.org/macsvc/errors"
)

func (*Host) CheckRequirements() error {
	for _, binary := range []string{"launchctl", "plutil"} {
		if _, err := exec.LookPath(binary); err != nil {
			return errors.SafeWrap(err, fmt.Sprintf("%s is not available", binary))
		}
	}
	return nil
}

func (h *Host) Version() (string, error) {
	name, err := exec.Command("sw_vers", "-productName").Output()
	if err != nil {
		return "", err
	}

	version, err := exec.Command("sw_vers", "-productVersion").Output()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s %s", strings.TrimSpace(string(name)), strings.TrimSpace(string(version))), nil
}
