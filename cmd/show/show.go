package show

import (
	"code.cloudfoundry.org/macsvc/cfanalytics"
	"code.cloudfoundry.org/macsvc/errors"
	"code.cloudfoundry.org/macsvc/launchd"
	"github.com/spf13/cobra"
	"howett.net/plist"
)

type UI interface {
	Say(message string, args ...interface{})
}

//go:generate mockgen -package mocks -destination mocks/manager.go code.cloudfoundry.org/macsvc/cmd/show Manager
type Manager interface {
	Show(name string) (*launchd.Service, error)
}

//go:generate mockgen -package mocks -destination mocks/analytics.go code.cloudfoundry.org/macsvc/cmd/show Analytics
type Analytics interface {
	Event(event string, data ...map[string]interface{}) error
}

type Show struct {
	UI        UI
	Manager   Manager
	Analytics Analytics
}

func (s *Show) Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <service>",
		Short: "Show the definition of a service",
		Args:  cobra.ExactArgs(1),
		RunE:  s.RunE,
	}
}

func (s *Show) RunE(cmd *cobra.Command, args []string) error {
	s.Analytics.Event(cfanalytics.SHOW)

	service, err := s.Manager.Show(args[0])
	if err != nil {
		return err
	}

	definition, err := plist.MarshalIndent(service.Plist, plist.XMLFormat, "  ")
	if err != nil {
		return errors.SafeWrap(err, "Failed to encode plist")
	}

	s.UI.Say("Label: %s", service.Label())
	s.UI.Say("File: %s", service.FilePath)
	s.UI.Say("")
	s.UI.Say("%s", string(definition))
	return nil
}
