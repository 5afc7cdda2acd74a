package launchctl

import (
	"code.cloudfoundry.org/macsvc/cfanalytics"
	"github.com/spf13/cobra"
)

type UI interface {
	Say(message string, args ...interface{})
}

//go:generate mockgen -package mocks -destination mocks/manager.go code.cloudfoundry.org/macsvc/cmd/launchctl Manager
type Manager interface {
	Launchctl(sub string, args ...string) (string, error)
	LaunchctlAs(user string, sub string, args ...string) (string, error)
}

//go:generate mockgen -package mocks -destination mocks/analytics.go code.cloudfoundry.org/macsvc/cmd/launchctl Analytics
type Analytics interface {
	Event(event string, data ...map[string]interface{}) error
}

type Launchctl struct {
	UI        UI
	Manager   Manager
	Analytics Analytics
	Args      struct {
		RunAs string
	}
}

func (l *Launchctl) Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "launchctl <subcommand> [args...]",
		Short: "Run a launchctl subcommand and print its output",
		Args:  cobra.MinimumNArgs(1),
		RunE:  l.RunE,
	}

	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&l.Args.RunAs, "runas", "", "Run launchctl as this user")
	return cmd
}

func (l *Launchctl) RunE(cmd *cobra.Command, args []string) error {
	l.Analytics.Event(cfanalytics.LAUNCHCTL, map[string]interface{}{"subcommand": args[0]})

	var (
		out string
		err error
	)
	if l.Args.RunAs != "" {
		out, err = l.Manager.LaunchctlAs(l.Args.RunAs, args[0], args[1:]...)
	} else {
		out, err = l.Manager.Launchctl(args[0], args[1:]...)
	}
	if err != nil {
		return err
	}

	if out != "" {
		l.UI.Say("%s", out)
	}
	return nil
}
