package host

import (
	"github.com/cloudfoundry/gosigar"
)

const defaultConsoleDevice = "/dev/console"

type Host struct {
	// ConsoleDevice is the device whose owner is the logged in console
	// user. Defaults to /dev/console.
	ConsoleDevice string
}

type ConsoleUser struct {
	UID      int
	Username string
}

func (h *Host) ProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}

	state := sigar.ProcState{}
	if err := state.Get(pid); err != nil {
		return false
	}
	return state.State != sigar.RunStateZombie
}

// ProcessName returns the short command name of pid, or "" when the
// process does not exist.
func (h *Host) ProcessName(pid int) string {
	state := sigar.ProcState{}
	if err := state.Get(pid); err != nil {
		return ""
	}
	return state.Name
}

func (h *Host) consoleDevice() string {
	if h.ConsoleDevice == "" {
		return defaultConsoleDevice
	}
	return h.ConsoleDevice
}
