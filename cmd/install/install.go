package install

import (
	"os"
	"strings"

	"code.cloudfoundry.org/macsvc/cfanalytics"
	"code.cloudfoundry.org/macsvc/errors"
	"code.cloudfoundry.org/macsvc/launchd"
	"github.com/spf13/cobra"
)

type UI interface {
	Say(message string, args ...interface{})
}

//go:generate mockgen -package mocks -destination mocks/manager.go code.cloudfoundry.org/macsvc/cmd/install Manager
type Manager interface {
	AddDaemon(spec launchd.DaemonSpec) error
	RemoveDaemon(label string) error
	Enable(name string) error
	Start(name string) error
}

//go:generate mockgen -package mocks -destination mocks/sudo.go code.cloudfoundry.org/macsvc/cmd/install Sudo
type Sudo interface {
	Run(args ...string) error
}

//go:generate mockgen -package mocks -destination mocks/analytics.go code.cloudfoundry.org/macsvc/cmd/install Analytics
type Analytics interface {
	Event(event string, data ...map[string]interface{}) error
}

type Install struct {
	UI        UI
	Manager   Manager
	Analytics Analytics
	Sudo      Sudo
	// Argv is the full command line, used to re-run the command as root.
	Argv []string
	Euid func() int
	Args struct {
		KeepAlive   bool
		RunAtLoad   bool
		Load        bool
		SessionType string
		Stdout      string
		Stderr      string
		Env         []string
	}
}

func (i *Install) Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install <label> <program> [args...]",
		Short: "Write a launch daemon definition that runs a program",
		Args:  cobra.MinimumNArgs(2),
		RunE:  i.RunE,
	}

	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVar(&i.Args.KeepAlive, "keep-alive", true, "Restart the program whenever it exits")
	cmd.Flags().BoolVar(&i.Args.RunAtLoad, "run-at-load", true, "Run the program as soon as the daemon is loaded")
	cmd.Flags().BoolVar(&i.Args.Load, "load", false, "Enable and start the daemon after writing it")
	cmd.Flags().StringVar(&i.Args.SessionType, "session-type", "", "Limit the daemon to a launchd session type")
	cmd.Flags().StringVar(&i.Args.Stdout, "stdout", "", "File that receives the program's standard output")
	cmd.Flags().StringVar(&i.Args.Stderr, "stderr", "", "File that receives the program's standard error")
	cmd.Flags().StringArrayVar(&i.Args.Env, "env", nil, "Environment variable for the program, as KEY=VALUE (repeatable)")
	return cmd
}

func (i *Install) RunE(cmd *cobra.Command, args []string) error {
	if !root(i.Euid) {
		return elevate(i.Sudo, i.Argv)
	}

	i.Analytics.Event(cfanalytics.INSTALL)

	var env map[string]string
	for _, kv := range i.Args.Env {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return errors.SafeWrap(nil, "environment variables must look like KEY=VALUE")
		}
		if env == nil {
			env = map[string]string{}
		}
		env[parts[0]] = parts[1]
	}

	spec := launchd.DaemonSpec{
		Label:                args[0],
		ProgramArguments:     args[1:],
		KeepAlive:            i.Args.KeepAlive,
		RunAtLoad:            i.Args.RunAtLoad,
		SessionType:          i.Args.SessionType,
		StdoutPath:           i.Args.Stdout,
		StderrPath:           i.Args.Stderr,
		EnvironmentVariables: env,
	}
	if err := i.Manager.AddDaemon(spec); err != nil {
		return errors.SafeWrap(err, "Failed to install daemon")
	}
	i.UI.Say("Installed %s", spec.Label)

	if !i.Args.Load {
		return nil
	}

	if err := i.Manager.Enable(spec.Label); err != nil {
		return err
	}
	if err := i.Manager.Start(spec.Label); err != nil {
		return err
	}
	i.UI.Say("Started %s", spec.Label)
	return nil
}

type Uninstall struct {
	UI        UI
	Manager   Manager
	Analytics Analytics
	Sudo      Sudo
	Argv      []string
	Euid      func() int
}

func (u *Uninstall) Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall <label>",
		Short: "Stop a launch daemon and remove its definition",
		Args:  cobra.ExactArgs(1),
		RunE:  u.RunE,
	}
}

func (u *Uninstall) RunE(cmd *cobra.Command, args []string) error {
	if !root(u.Euid) {
		return elevate(u.Sudo, u.Argv)
	}

	u.Analytics.Event(cfanalytics.UNINSTALL)

	if err := u.Manager.RemoveDaemon(args[0]); err != nil {
		return errors.SafeWrap(err, "Failed to uninstall daemon")
	}

	u.UI.Say("Uninstalled %s", args[0])
	return nil
}

func root(euid func() int) bool {
	if euid == nil {
		euid = os.Geteuid
	}
	return euid() == 0
}

// elevate re-runs the current command line under sudo, since launch
// daemons live in directories only root can write.
func elevate(sudo Sudo, argv []string) error {
	if len(argv) == 0 {
		return errors.SafeWrap(nil, "launch daemons can only be managed as root")
	}

	if err := sudo.Run(argv...); err != nil {
		return errors.SafeWrap(err, "Failed to run as root")
	}
	return nil
}
