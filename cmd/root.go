package cmd

import (
	"os"
	"strings"

	"code.cloudfoundry.org/macsvc/cmd/control"
	"code.cloudfoundry.org/macsvc/cmd/install"
	"code.cloudfoundry.org/macsvc/cmd/launchctl"
	"code.cloudfoundry.org/macsvc/cmd/list"
	"code.cloudfoundry.org/macsvc/cmd/query"
	"code.cloudfoundry.org/macsvc/cmd/show"
	"code.cloudfoundry.org/macsvc/cmd/status"
	"code.cloudfoundry.org/macsvc/cmd/telemetry"
	"code.cloudfoundry.org/macsvc/cmd/version"
	"code.cloudfoundry.org/macsvc/config"
	"code.cloudfoundry.org/macsvc/launchd"
	"code.cloudfoundry.org/macsvc/runner"
	"github.com/spf13/cobra"
)

type UI interface {
	Say(message string, args ...interface{})
}

type AnalyticsClient interface {
	Event(event string, data ...map[string]interface{}) error
}

type Toggle interface {
	Enabled() bool
	SetEnabled(value bool) error
}

type Host interface {
	CheckRequirements() error
	ProcessName(pid int) string
	Version() (string, error)
}

type Manager interface {
	Show(name string) (*launchd.Service, error)
	List(name string) (string, error)
	Launchctl(sub string, args ...string) (string, error)
	LaunchctlAs(user string, sub string, args ...string) (string, error)
	Enable(name string) error
	Disable(name string) error
	Start(name string) error
	Stop(name string) error
	Restart(name string) error
	Status(name string) (bool, error)
	PIDs(name string) ([]int, error)
	Available(name string) bool
	Missing(name string) bool
	Enabled(name string) bool
	Disabled(label string, domain string) (bool, error)
	GetAll() ([]string, error)
	GetEnabled() ([]string, error)
	AddDaemon(spec launchd.DaemonSpec) error
	RemoveDaemon(label string) error
}

func NewRoot(ui UI, config config.Config, manager Manager, host Host, analyticsClient AnalyticsClient, analyticsToggle Toggle) *cobra.Command {
	root := &cobra.Command{
		Use:           "macsvc",
		Short:         "Manage macOS launchd services",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("help", false, "")
	root.PersistentFlags().Lookup("help").Hidden = true
	root.PersistentFlags().BoolP("verbose", "v", false, "Trace every launchctl invocation")

	usageTemplate := strings.Replace(root.UsageTemplate(), "\n"+`Use "{{.CommandPath}} [command] --help" for more information about a command.`, "", -1)
	root.SetUsageTemplate(usageTemplate)

	var (
		argv = append([]string{executable()}, os.Args[1:]...)
		sudo = &runner.Sudo{}

		versionCmd = &version.Version{
			UI:           ui,
			Version:      config.CliVersion,
			BuildVersion: config.BuildVersion,
			Host:         host,
		}

		telemetryCmd = &telemetry.Telemetry{
			UI:              ui,
			AnalyticsToggle: analyticsToggle,
			Analytics:       analyticsClient,
		}

		showCmd = &show.Show{
			UI:        ui,
			Manager:   manager,
			Analytics: analyticsClient,
		}

		listCmd = &list.List{
			UI:        ui,
			Manager:   manager,
			Analytics: analyticsClient,
		}

		launchctlCmd = &launchctl.Launchctl{
			UI:        ui,
			Manager:   manager,
			Analytics: analyticsClient,
		}

		controlCmds = &control.Control{
			UI:        ui,
			Manager:   manager,
			Analytics: analyticsClient,
		}

		statusCmd = &status.Status{
			UI:        ui,
			Manager:   manager,
			Host:      host,
			Analytics: analyticsClient,
		}

		queryCmds = &query.Query{
			UI:        ui,
			Manager:   manager,
			Analytics: analyticsClient,
		}

		installCmd = &install.Install{
			UI:        ui,
			Manager:   manager,
			Analytics: analyticsClient,
			Sudo:      sudo,
			Argv:      argv,
			Euid:      os.Geteuid,
		}

		uninstallCmd = &install.Uninstall{
			UI:        ui,
			Manager:   manager,
			Analytics: analyticsClient,
			Sudo:      sudo,
			Argv:      argv,
			Euid:      os.Geteuid,
		}

		helpCmd = &cobra.Command{
			Use:   "help [command]",
			Short: "Help about any command",
			Run: func(c *cobra.Command, args []string) {
				cmd, _, _ := root.Find(args)
				cmd.Help()
			},
		}
	)

	serviceCmds := []*cobra.Command{
		showCmd.Cmd(),
		listCmd.Cmd(),
		launchctlCmd.Cmd(),
		statusCmd.Cmd(),
		installCmd.Cmd(),
		uninstallCmd.Cmd(),
	}
	serviceCmds = append(serviceCmds, controlCmds.Cmds()...)
	serviceCmds = append(serviceCmds, queryCmds.Cmds()...)

	for _, cmd := range serviceCmds {
		cmd.PreRunE = func(_ *cobra.Command, _ []string) error {
			return host.CheckRequirements()
		}
		root.AddCommand(cmd)
	}

	root.AddCommand(versionCmd.Cmd())
	root.AddCommand(telemetryCmd.Cmd())
	root.SetHelpCommand(helpCmd)
	return root
}

func executable() string {
	if path, err := os.Executable(); err == nil {
		return path
	}
	return os.Args[0]
}
