package control

import (
	"code.cloudfoundry.org/macsvc/cfanalytics"
	"github.com/spf13/cobra"
)

type UI interface {
	Say(message string, args ...interface{})
}

//go:generate mockgen -package mocks -destination mocks/manager.go code.cloudfoundry.org/macsvc/cmd/control Manager
type Manager interface {
	Enable(name string) error
	Disable(name string) error
	Start(name string) error
	Stop(name string) error
	Restart(name string) error
}

//go:generate mockgen -package mocks -destination mocks/analytics.go code.cloudfoundry.org/macsvc/cmd/control Analytics
type Analytics interface {
	Event(event string, data ...map[string]interface{}) error
}

// Control builds the commands that change the state of a single service.
type Control struct {
	UI        UI
	Manager   Manager
	Analytics Analytics
}

type verb struct {
	use    string
	short  string
	event  string
	done   string
	action func(name string) error
}

func (c *Control) Cmds() []*cobra.Command {
	verbs := []verb{
		{"enable", "Enable a service in its launchd domain", cfanalytics.ENABLE, "Enabled %s", c.Manager.Enable},
		{"disable", "Disable a service in its launchd domain", cfanalytics.DISABLE, "Disabled %s", c.Manager.Disable},
		{"start", "Bootstrap a service into its launchd domain", cfanalytics.START, "Started %s", c.Manager.Start},
		{"stop", "Boot a service out of its launchd domain", cfanalytics.STOP, "Stopped %s", c.Manager.Stop},
		{"restart", "Stop a loaded service and start it again", cfanalytics.RESTART, "Restarted %s", c.Manager.Restart},
	}

	cmds := make([]*cobra.Command, 0, len(verbs))
	for _, v := range verbs {
		cmds = append(cmds, c.cmd(v))
	}
	return cmds
}

func (c *Control) cmd(v verb) *cobra.Command {
	return &cobra.Command{
		Use:   v.use + " <service>",
		Short: v.short,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c.Analytics.Event(v.event)

			if err := v.action(args[0]); err != nil {
				return err
			}

			c.UI.Say(v.done, args[0])
			return nil
		},
	}
}
