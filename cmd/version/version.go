package version

import (
	"fmt"
	"strings"

	"code.cloudfoundry.org/macsvc/config"
	"github.com/spf13/cobra"
)

type UI interface {
	Say(message string, args ...interface{})
}

//go:generate mockgen -package mocks -destination mocks/host.go code.cloudfoundry.org/macsvc/cmd/version Host
type Host interface {
	Version() (string, error)
}

type Version struct {
	UI           UI
	Version      *config.Version
	BuildVersion string
	Host         Host
}

func (v *Version) Execute() {
	message := []string{fmt.Sprintf("CLI: %s", v.Version)}

	if v.BuildVersion != "" {
		message = append(message, fmt.Sprintf("Build: %s", v.BuildVersion))
	}

	if osVersion, err := v.Host.Version(); err == nil {
		message = append(message, fmt.Sprintf("OS: %s", osVersion))
	}

	v.UI.Say(strings.Join(message, "\n"))
}

func (v *Version) Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of macsvc and the host OS",
		Run: func(_ *cobra.Command, _ []string) {
			v.Execute()
		},
	}
	return cmd
}
