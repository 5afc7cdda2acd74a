package query

import (
	"strings"

	"code.cloudfoundry.org/macsvc/cfanalytics"
	"github.com/spf13/cobra"
)

type UI interface {
	Say(message string, args ...interface{})
}

//go:generate mockgen -package mocks -destination mocks/manager.go code.cloudfoundry.org/macsvc/cmd/query Manager
type Manager interface {
	Available(name string) bool
	Missing(name string) bool
	Enabled(name string) bool
	Disabled(label string, domain string) (bool, error)
	GetAll() ([]string, error)
	GetEnabled() ([]string, error)
}

//go:generate mockgen -package mocks -destination mocks/analytics.go code.cloudfoundry.org/macsvc/cmd/query Analytics
type Analytics interface {
	Event(event string, data ...map[string]interface{}) error
}

// Query builds the read-only commands that answer a question about the
// installed services. Boolean answers are printed as true or false.
type Query struct {
	UI        UI
	Manager   Manager
	Analytics Analytics
	Args      struct {
		Domain string
	}
}

func (q *Query) Cmds() []*cobra.Command {
	disabled := q.boolCmd("disabled <label>", "Show whether a label is disabled in a launchd domain", "disabled", func(name string) (bool, error) {
		return q.Manager.Disabled(name, q.Args.Domain)
	})
	disabled.Flags().StringVar(&q.Args.Domain, "domain", "system", "launchd domain to inspect, e.g. system or gui/501")

	return []*cobra.Command{
		q.boolCmd("available <service>", "Show whether a service definition is installed", "available", wrap(q.Manager.Available)),
		q.boolCmd("missing <service>", "Show whether a service definition is not installed", "missing", wrap(q.Manager.Missing)),
		q.boolCmd("enabled <service>", "Show whether launchd knows the service", "enabled", wrap(q.Manager.Enabled)),
		disabled,
		q.listCmd("get-all", "List every available or loaded service", "get-all", q.Manager.GetAll),
		q.listCmd("get-enabled", "List every loaded service", "get-enabled", q.Manager.GetEnabled),
	}
}

func wrap(f func(name string) bool) func(string) (bool, error) {
	return func(name string) (bool, error) {
		return f(name), nil
	}
}

func (q *Query) boolCmd(use, short, question string, answer func(string) (bool, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			q.Analytics.Event(cfanalytics.QUERY, map[string]interface{}{"query": question})

			ok, err := answer(args[0])
			if err != nil {
				return err
			}

			q.UI.Say("%t", ok)
			return nil
		},
	}
}

func (q *Query) listCmd(use, short, question string, answer func() ([]string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			q.Analytics.Event(cfanalytics.QUERY, map[string]interface{}{"query": question})

			labels, err := answer()
			if err != nil {
				return err
			}

			if len(labels) > 0 {
				q.UI.Say("%s", strings.Join(labels, "\n"))
			}
			return nil
		},
	}
}
