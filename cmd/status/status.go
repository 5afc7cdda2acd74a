package status

import (
	"code.cloudfoundry.org/macsvc/cfanalytics"
	"github.com/spf13/cobra"
)

type UI interface {
	Say(message string, args ...interface{})
}

//go:generate mockgen -package mocks -destination mocks/manager.go code.cloudfoundry.org/macsvc/cmd/status Manager
type Manager interface {
	Status(name string) (bool, error)
	PIDs(name string) ([]int, error)
}

//go:generate mockgen -package mocks -destination mocks/host.go code.cloudfoundry.org/macsvc/cmd/status Host
type Host interface {
	ProcessName(pid int) string
}

//go:generate mockgen -package mocks -destination mocks/analytics.go code.cloudfoundry.org/macsvc/cmd/status Analytics
type Analytics interface {
	Event(event string, data ...map[string]interface{}) error
}

type Status struct {
	UI        UI
	Manager   Manager
	Host      Host
	Analytics Analytics
}

func (s *Status) Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <service>",
		Short: "Show whether a service is running",
		Args:  cobra.ExactArgs(1),
		RunE:  s.RunE,
	}
}

func (s *Status) RunE(cmd *cobra.Command, args []string) error {
	s.Analytics.Event(cfanalytics.STATUS)

	name := args[0]
	running, err := s.Manager.Status(name)
	if err != nil {
		return err
	}

	if !running {
		s.UI.Say("%s: stopped", name)
		return nil
	}

	pids, err := s.Manager.PIDs(name)
	if err != nil {
		return err
	}

	if len(pids) == 0 {
		s.UI.Say("%s: loaded", name)
		return nil
	}

	s.UI.Say("%s: running", name)
	for _, pid := range pids {
		if processName := s.Host.ProcessName(pid); processName != "" {
			s.UI.Say("  pid %d (%s)", pid, processName)
		} else {
			s.UI.Say("  pid %d", pid)
		}
	}
	return nil
}
