package cfanalytics

import (
	"runtime"
	"strings"
	"time"

	"code.cloudfoundry.org/macsvc/errors"
	"github.com/denisbrodbeck/machineid"
	"gopkg.in/segmentio/analytics-go.v3"
)

const (
	SHOW        = "show"
	LIST        = "list"
	LAUNCHCTL   = "launchctl"
	ENABLE      = "enable"
	DISABLE     = "disable"
	START       = "start"
	STOP        = "stop"
	RESTART     = "restart"
	STATUS      = "status"
	QUERY       = "query"
	INSTALL     = "install"
	UNINSTALL   = "uninstall"
	TELEMETRY   = "telemetry off"
	ERROR       = "error"
	appIDSecret = "macsvc"
)

//go:generate mockgen -package mocks -destination mocks/analytics_client.go gopkg.in/segmentio/analytics-go.v3 Client

//go:generate mockgen -package mocks -destination mocks/toggle.go code.cloudfoundry.org/macsvc/cfanalytics Toggle
type Toggle interface {
	Defined() bool
	Enabled() bool
	SetEnabled(value bool) error
	GetProps() map[string]interface{}
}

//go:generate mockgen -package mocks -destination mocks/ui.go code.cloudfoundry.org/macsvc/cfanalytics UI
type UI interface {
	Ask(prompt string) (answer string)
}

type Analytics struct {
	client    analytics.Client
	toggle    Toggle
	userId    string
	version   string
	osVersion string
	exit      chan struct{}
	ui        UI
}

func New(toggle Toggle, client analytics.Client, version string, osVersion string, exit chan struct{}, ui UI) *Analytics {
	uuid, err := machineid.ProtectedID(appIDSecret)
	if err != nil {
		uuid = "UNKNOWN_ID"
	}

	return &Analytics{
		client:    client,
		toggle:    toggle,
		userId:    uuid,
		version:   version,
		osVersion: osVersion,
		exit:      exit,
		ui:        ui,
	}
}

func (a *Analytics) Close() {
	a.client.Close()
}

func (a *Analytics) Event(event string, data ...map[string]interface{}) error {
	if !a.toggle.Enabled() {
		return nil
	}

	a.client.Enqueue(analytics.Identify{
		UserId: a.userId,
	})

	properties := analytics.NewProperties()
	properties.Set("os", runtime.GOOS)
	properties.Set("cli_version", a.version)
	properties.Set("os_version", a.osVersion)
	for k, v := range a.toggle.GetProps() {
		properties.Set(k, v)
	}
	for _, d := range data {
		for k, v := range d {
			properties.Set(k, v)
		}
	}

	return a.client.Enqueue(analytics.Track{
		UserId:     a.userId,
		Event:      event,
		Timestamp:  time.Now().UTC(),
		Properties: properties,
	})
}

func (a *Analytics) PromptOptInIfNeeded() error {
	if a.toggle.Defined() {
		return nil
	}

	response := a.ui.Ask(`macsvc collects anonymous usage data about which service operations are run.

Are you ok with macsvc periodically capturing anonymized telemetry [y/N]?`)

	select {
	case <-a.exit:
		return errors.SafeWrap(nil, "Exit while waiting for telemetry prompt")
	case <-time.After(time.Millisecond):
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return a.toggle.SetEnabled(response == "y" || response == "yes")
}
