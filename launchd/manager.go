package launchd

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"code.cloudfoundry.org/macsvc/config"
	"code.cloudfoundry.org/macsvc/errors"
	"code.cloudfoundry.org/macsvc/host"
	"code.cloudfoundry.org/macsvc/runner"
	"code.cloudfoundry.org/macsvc/util"
)

const restartAttempts = 3

//go:generate mockgen -package mocks -destination mocks/runner.go code.cloudfoundry.org/macsvc/launchd Runner
type Runner interface {
	Run(opts runner.Options, name string, args ...string) (runner.Result, error)
}

//go:generate mockgen -package mocks -destination mocks/host.go code.cloudfoundry.org/macsvc/launchd Host
type Host interface {
	ConsoleUser() (host.ConsoleUser, error)
	ProcessRunning(pid int) bool
}

type Logger interface {
	Printf(format string, v ...interface{})
}

// Manager controls launchd jobs through launchctl.
type Manager struct {
	Runner        Runner
	Host          Host
	Logger        Logger
	LaunchctlPath string
	PListDir      string
	LaunchdPaths  []string
	UsersDir      string
	Timeout       time.Duration
	// RetryWait is the pause between bootstrap attempts in Restart.
	RetryWait time.Duration

	mu       sync.Mutex
	services map[string]*Service
}

func New(cfg config.Config, r Runner, h Host, logger Logger) *Manager {
	return &Manager{
		Runner:        r,
		Host:          h,
		Logger:        logger,
		LaunchctlPath: cfg.LaunchctlPath,
		PListDir:      cfg.PListDir,
		LaunchdPaths:  cfg.LaunchdPaths,
		UsersDir:      cfg.UsersDir,
		Timeout:       cfg.Timeout,
		RetryWait:     time.Second,
	}
}

// Show resolves name to a job definition. name may be a Label, the plist
// path or the plist file name without its extension, in any case.
func (m *Manager) Show(name string) (*Service, error) {
	lname := strings.ToLower(name)

	services, cached, err := m.availableServices(false)
	if err != nil {
		return nil, err
	}
	if svc := nameInServices(lname, services); svc != nil {
		return svc, nil
	}

	if !cached {
		return nil, errors.NotFound(name)
	}

	services, _, err = m.availableServices(true)
	if err != nil {
		return nil, err
	}
	if svc := nameInServices(lname, services); svc != nil {
		return svc, nil
	}
	return nil, errors.NotFound(name)
}

// List returns the output of `launchctl list`, or of `launchctl list
// <label>` when name is given.
func (m *Manager) List(name string) (string, error) {
	if name == "" {
		return m.launchctl(runner.Options{}, "list")
	}

	svc, err := m.Show(name)
	if err != nil {
		return "", err
	}

	runAs, err := m.sessionUser(svc)
	if err != nil {
		return "", err
	}
	return m.launchctl(runner.Options{RunAs: runAs}, "list", svc.Label())
}

func (m *Manager) Enable(name string) error {
	target, _, err := m.target(name, true)
	if err != nil {
		return err
	}
	_, err = m.launchctl(runner.Options{}, "enable", target)
	return err
}

func (m *Manager) Disable(name string) error {
	target, _, err := m.target(name, true)
	if err != nil {
		return err
	}
	_, err = m.launchctl(runner.Options{}, "disable", target)
	return err
}

// Start bootstraps the job into its domain.
func (m *Manager) Start(name string) error {
	domain, path, err := m.target(name, false)
	if err != nil {
		return err
	}
	_, err = m.launchctl(runner.Options{Timeout: m.Timeout}, "bootstrap", domain, path)
	return err
}

// Stop boots the job out of its domain.
func (m *Manager) Stop(name string) error {
	domain, path, err := m.target(name, false)
	if err != nil {
		return err
	}
	_, err = m.launchctl(runner.Options{Timeout: m.Timeout}, "bootout", domain, path)
	return err
}

// Restart boots a loaded job out and bootstraps it again. launchd may
// still be tearing the job down when bootout returns, so a failed
// bootstrap is retried.
func (m *Manager) Restart(name string) error {
	if m.Enabled(name) {
		if err := m.Stop(name); err != nil {
			return err
		}
	}

	return util.Perform(restartAttempts, m.RetryWait, isCommandError, func() error {
		return m.Start(name)
	})
}

// Status reports whether the job is running. Jobs that launchd only runs
// on demand count as running while they are loaded.
func (m *Manager) Status(name string) (bool, error) {
	svc, pids, err := m.pids(name)
	if errors.IsNotFound(err) {
		m.logf("launchd: %s", err)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if len(pids) > 0 {
		return true, nil
	}
	return !svc.AlwaysRunning() && m.Enabled(name), nil
}

// PIDs returns the live process ids launchd reports for the job.
func (m *Manager) PIDs(name string) ([]int, error) {
	_, pids, err := m.pids(name)
	return pids, err
}

func (m *Manager) pids(name string) (*Service, []int, error) {
	svc, err := m.Show(name)
	if err != nil {
		return nil, nil, err
	}

	runAs, err := m.sessionUser(svc)
	if err != nil {
		return nil, nil, err
	}

	out, err := m.launchctl(runner.Options{RunAs: runAs}, "list")
	if err != nil {
		return nil, nil, err
	}

	var pids []int
	for _, entry := range ParseList(out) {
		if entry.Label != svc.Label() || !entry.Running() {
			continue
		}
		if m.Host.ProcessRunning(entry.PID) {
			pids = append(pids, entry.PID)
		}
	}
	return svc, pids, nil
}

func (m *Manager) Available(name string) bool {
	_, err := m.Show(name)
	return err == nil
}

func (m *Manager) Missing(name string) bool {
	return !m.Available(name)
}

// Enabled reports whether launchd has the job loaded.
func (m *Manager) Enabled(name string) bool {
	_, err := m.List(name)
	return err == nil
}

// Disabled reports whether label is marked disabled in domain. An empty
// domain means "system".
func (m *Manager) Disabled(label string, domain string) (bool, error) {
	if domain == "" {
		domain = "system"
	}

	out, err := m.launchctl(runner.Options{}, "print-disabled", domain)
	if err != nil {
		return false, err
	}
	return parseDisabled(out, label), nil
}

// GetEnabled returns the labels of all loaded jobs.
func (m *Manager) GetEnabled() ([]string, error) {
	out, err := m.launchctl(runner.Options{}, "list")
	if err != nil {
		return nil, err
	}

	var labels []string
	for _, entry := range ParseList(out) {
		labels = append(labels, entry.Label)
	}
	return uniqueSorted(labels), nil
}

// GetAll returns every loaded job and every job defined on disk.
func (m *Manager) GetAll() ([]string, error) {
	enabled, err := m.GetEnabled()
	if err != nil {
		return nil, err
	}

	services, err := m.AvailableServices(false)
	if err != nil {
		return nil, err
	}

	all := enabled
	for key := range services {
		all = append(all, key)
	}
	return uniqueSorted(all), nil
}

// target returns the launchctl domain for the job and its plist path.
// With service set, the domain is suffixed with the job label.
func (m *Manager) target(name string, service bool) (string, string, error) {
	svc, err := m.Show(name)
	if err != nil {
		return "", "", err
	}

	domain := "system"
	if svc.IsAgent() {
		user, err := m.Host.ConsoleUser()
		if err != nil {
			return "", "", err
		}
		domain = fmt.Sprintf("gui/%d", user.UID)
	}

	if service {
		if svc.Label() == "" {
			return "", "", errors.SafeWrap(nil, fmt.Sprintf("%s has no Label", svc.FilePath))
		}
		domain = domain + "/" + svc.Label()
	}
	return domain, svc.FilePath, nil
}

// sessionUser is the user whose launchd session owns the job: the console
// user for agents, nobody in particular for daemons.
func (m *Manager) sessionUser(svc *Service) (string, error) {
	if !svc.IsAgent() {
		return "", nil
	}

	user, err := m.Host.ConsoleUser()
	if err != nil {
		return "", err
	}
	return user.Username, nil
}

func (m *Manager) logf(format string, v ...interface{}) {
	if m.Logger != nil {
		m.Logger.Printf(format, v...)
	}
}

func uniqueSorted(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := []string{}
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
