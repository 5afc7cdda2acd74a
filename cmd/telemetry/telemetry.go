package telemetry

import (
	"code.cloudfoundry.org/macsvc/cfanalytics"
	"code.cloudfoundry.org/macsvc/errors"
	"github.com/spf13/cobra"
)

type UI interface {
	Say(message string, args ...interface{})
}

type Toggle interface {
	Enabled() bool
	SetEnabled(value bool) error
}

type Analytics interface {
	Event(event string, data ...map[string]interface{}) error
}

type Telemetry struct {
	UI              UI
	AnalyticsToggle Toggle
	Analytics       Analytics
	Args            struct {
		FlagOff bool
		FlagOn  bool
	}
}

func (t *Telemetry) Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "telemetry",
		Short: "Show status for collecting anonymous usage telemetry",
		RunE:  t.RunE,
	}

	cmd.PersistentFlags().BoolVar(&t.Args.FlagOff, "off", false, "Disable the collection of anonymous usage telemetry")
	cmd.PersistentFlags().BoolVar(&t.Args.FlagOn, "on", false, "Enable the collection of anonymous usage telemetry")
	return cmd
}

func (t *Telemetry) RunE(cmd *cobra.Command, args []string) error {
	if t.Args.FlagOff && t.Args.FlagOn {
		return errors.SafeWrap(nil, "--on and --off cannot be used together")
	}

	if t.Args.FlagOff {
		// sent while still enabled, so the opt-out itself is counted
		t.Analytics.Event(cfanalytics.TELEMETRY)
		if err := t.AnalyticsToggle.SetEnabled(false); err != nil {
			return errors.SafeWrap(err, "turning off telemetry")
		}
	} else if t.Args.FlagOn {
		if err := t.AnalyticsToggle.SetEnabled(true); err != nil {
			return errors.SafeWrap(err, "turning on telemetry")
		}
	}

	if t.AnalyticsToggle.Enabled() {
		t.UI.Say("Telemetry is turned ON")
	} else {
		t.UI.Say("Telemetry is turned OFF")
	}
	return nil
}
