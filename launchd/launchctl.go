package launchd

import (
	"fmt"
	"strings"

	"code.cloudfoundry.org/macsvc/errors"
	"code.cloudfoundry.org/macsvc/runner"
)

// CommandError is returned when launchctl exits non-zero or reports that
// the service is disabled.
type CommandError struct {
	SubCommand string
	Stdout     string
	Stderr     string
	ExitCode   int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("Failed to %s service:\nstdout: %s\nstderr: %s\nretcode: %d",
		e.SubCommand, e.Stdout, e.Stderr, e.ExitCode)
}

func isCommandError(err error) bool {
	_, ok := err.(*CommandError)
	return ok
}

// Launchctl runs `launchctl sub args...` and returns its stdout.
func (m *Manager) Launchctl(sub string, args ...string) (string, error) {
	return m.launchctl(runner.Options{}, sub, args...)
}

// LaunchctlAs is Launchctl run as another user.
func (m *Manager) LaunchctlAs(user string, sub string, args ...string) (string, error) {
	return m.launchctl(runner.Options{RunAs: user}, sub, args...)
}

func (m *Manager) launchctl(opts runner.Options, sub string, args ...string) (string, error) {
	invocation := append([]string{sub}, args...)
	m.logf("launchctl: running %s %s (runas=%q)", m.launchctlPath(), strings.Join(invocation, " "), opts.RunAs)

	result, err := m.Runner.Run(opts, m.launchctlPath(), invocation...)
	if err != nil {
		return "", errors.SafeWrap(err, fmt.Sprintf("Failed to %s service", sub))
	}

	if result.ExitCode != 0 || serviceDisabled(result.Stderr) {
		m.logf("launchctl: %s exited %d: %s", sub, result.ExitCode, result.Stderr)
		return "", &CommandError{
			SubCommand: sub,
			Stdout:     result.Stdout,
			Stderr:     result.Stderr,
			ExitCode:   result.ExitCode,
		}
	}

	return result.Stdout, nil
}

// launchctl exits 0 for some operations on disabled services and only
// says so on stderr.
func serviceDisabled(stderr string) bool {
	return strings.Contains(strings.ToLower(stderr), "service is disabled")
}

func (m *Manager) launchctlPath() string {
	if m.LaunchctlPath == "" {
		return "launchctl"
	}
	return m.LaunchctlPath
}
