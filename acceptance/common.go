package acceptance

import (
	"os"
	"os/exec"
	"regexp"
	"runtime"
	"strings"
)

// IsLaunchdRunning reports whether launchd has a live process for label.
func IsLaunchdRunning(label string) func() (bool, error) {
	return func() (bool, error) {
		txt, err := exec.Command("launchctl", "list", label).CombinedOutput()
		if err != nil {
			if strings.Contains(string(txt), "Could not find service") {
				return false, nil
			}
			return false, err
		}
		re := regexp.MustCompile(`^\s*"PID"\s*=`)
		for _, line := range strings.Split(string(txt), "\n") {
			if re.MatchString(line) {
				return true, nil
			}
		}
		return false, nil
	}
}

func FileExists(file string) (bool, error) {
	_, err := os.Stat(file)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func IsDarwin() bool {
	return runtime.GOOS == "darwin"
}

func IsRoot() bool {
	return os.Geteuid() == 0
}

// HasBinaries reports whether every binary is on the PATH.
func HasBinaries(binaries ...string) bool {
	for _, binary := range binaries {
		if _, err := exec.LookPath(binary); err != nil {
			return false
		}
	}
	return true
}
