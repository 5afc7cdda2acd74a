package list

import (
	"code.cloudfoundry.org/macsvc/cfanalytics"
	"github.com/spf13/cobra"
)

type UI interface {
	Say(message string, args ...interface{})
}

//go:generate mockgen -package mocks -destination mocks/manager.go code.cloudfoundry.org/macsvc/cmd/list Manager
type Manager interface {
	List(name string) (string, error)
}

//go:generate mockgen -package mocks -destination mocks/analytics.go code.cloudfoundry.org/macsvc/cmd/list Analytics
type Analytics interface {
	Event(event string, data ...map[string]interface{}) error
}

type List struct {
	UI        UI
	Manager   Manager
	Analytics Analytics
}

func (l *List) Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [service]",
		Short: "List loaded services, or the launchd record of one service",
		Args:  cobra.MaximumNArgs(1),
		RunE:  l.RunE,
	}
}

func (l *List) RunE(cmd *cobra.Command, args []string) error {
	l.Analytics.Event(cfanalytics.LIST)

	name := ""
	if len(args) == 1 {
		name = args[0]
	}

	out, err := l.Manager.List(name)
	if err != nil {
		return err
	}

	l.UI.Say("%s", out)
	return nil
}
