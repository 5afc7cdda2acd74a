package main

import (
	"io/ioutil"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"code.cloudfoundry.org/cli/cf/terminal"
	"code.cloudfoundry.org/cli/cf/trace"
	"code.cloudfoundry.org/macsvc/cfanalytics"
	"code.cloudfoundry.org/macsvc/cfanalytics/toggle"
	"code.cloudfoundry.org/macsvc/cmd"
	"code.cloudfoundry.org/macsvc/config"
	"code.cloudfoundry.org/macsvc/errors"
	"code.cloudfoundry.org/macsvc/host"
	"code.cloudfoundry.org/macsvc/launchd"
	"code.cloudfoundry.org/macsvc/runner"
	"gopkg.in/segmentio/analytics-go.v3"
)

func main() {
	exitChan := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(make(chan os.Signal), syscall.SIGHUP)
	signal.Notify(sigChan, syscall.SIGINT)
	signal.Notify(sigChan, syscall.SIGTERM)

	go func() {
		<-sigChan
		close(exitChan)
	}()

	logger := trace.NewLogger(os.Stdout, verbose(os.Args[1:]), os.Getenv("MACSVC_TRACE"), "")
	ui := terminal.NewUI(
		os.Stdin,
		os.Stdout,
		terminal.NewTeePrinter(os.Stdout),
		logger,
	)

	conf, err := config.NewConfig()
	if err != nil {
		ui.Failed(err.Error())
		os.Exit(1)
	}

	analyticsToggle := toggle.New(filepath.Join(conf.AnalyticsDir, "analytics.txt"))
	baseAnalyticsClient, _ := analytics.NewWithConfig(conf.AnalyticsKey, analytics.Config{
		Logger: analytics.StdLogger(log.New(ioutil.Discard, "", 0)),
	})

	h := &host.Host{}
	osVersion, err := h.Version()
	if err != nil {
		osVersion = "unknown-os-version"
	}
	analyticsClient := cfanalytics.New(analyticsToggle, baseAnalyticsClient, conf.CliVersion.String(), osVersion, exitChan, ui)

	manager := launchd.New(conf, &runner.Exec{}, h, logger)
	root := cmd.NewRoot(ui, conf, manager, h, analyticsClient, analyticsToggle)

	if promptsForTelemetry(os.Args[1:]) {
		if err := analyticsClient.PromptOptInIfNeeded(); err != nil {
			ui.Failed(err.Error())
			analyticsClient.Close()
			os.Exit(1)
		}
	}

	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		ui.Failed(err.Error())
		extraData := map[string]interface{}{"errors": errors.SafeError(err)}
		analyticsClient.Event(cfanalytics.ERROR, extraData)
		analyticsClient.Close()
		os.Exit(1)
	}
	analyticsClient.Close()
}

func verbose(args []string) bool {
	for _, arg := range args {
		if arg == "-v" || arg == "--verbose" {
			return true
		}
	}
	return false
}

// promptsForTelemetry is false for invocations that never touch a service:
// help, version and telemetry itself.
func promptsForTelemetry(args []string) bool {
	if len(args) == 0 {
		return false
	}

	switch strings.ToLower(args[0]) {
	case "help", "-h", "--help", "version", "telemetry":
		return false
	}
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return false
		}
	}
	return true
}
