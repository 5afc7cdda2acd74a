package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"code.cloudfoundry.org/macsvc/errors"
	"gopkg.in/yaml.v2"
)

var (
	analyticsKey     string
	testAnalyticsKey string

	cliVersion   string
	buildVersion string
)

const DefaultTimeout = 30 * time.Second

var DefaultLaunchdPaths = []string{
	"/Library/LaunchAgents",
	"/Library/LaunchDaemons",
	"/System/Library/LaunchAgents",
	"/System/Library/LaunchDaemons",
}

type Config struct {
	MacsvcHome    string
	AnalyticsDir  string
	LaunchctlPath string
	// PListDir is where install writes new service definitions.
	PListDir     string
	LaunchdPaths []string
	// UsersDir is scanned for <user>/Library/LaunchAgents.
	UsersDir     string
	Timeout      time.Duration
	CliVersion   *Version
	BuildVersion string
	AnalyticsKey string
}

type fileConfig struct {
	LaunchctlPath string   `yaml:"launchctl_path"`
	PListDir      string   `yaml:"plist_dir"`
	LaunchdPaths  []string `yaml:"launchd_paths"`
	UsersDir      string   `yaml:"users_dir"`
	Timeout       string   `yaml:"timeout"`
}

func NewConfig() (Config, error) {
	home := getMacsvcHome()

	var analytixKey string
	if os.Getenv("MACSVC_MODE") == "debug" || analyticsKey == "" {
		analytixKey = testAnalyticsKey
	} else {
		analytixKey = analyticsKey
	}

	version, err := NewSemver(cliVersion)
	if err != nil {
		return Config{}, errors.SafeWrap(err, "Unable to parse the cli version")
	}

	cfg := Config{
		MacsvcHome:    home,
		AnalyticsDir:  filepath.Join(home, "analytics"),
		LaunchctlPath: "launchctl",
		PListDir:      "/Library/LaunchDaemons",
		LaunchdPaths:  append([]string{}, DefaultLaunchdPaths...),
		UsersDir:      "/Users",
		Timeout:       DefaultTimeout,
		CliVersion:    version,
		BuildVersion:  buildVersion,
		AnalyticsKey:  analytixKey,
	}

	if err := cfg.Load(filepath.Join(home, "config.yml")); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load applies the overrides in the yaml file at path. A missing file is
// not an error.
func (c *Config) Load(path string) error {
	txt, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.SafeWrap(err, "Unable to read config file")
	}

	var fc fileConfig
	if err := yaml.Unmarshal(txt, &fc); err != nil {
		return errors.SafeWrap(err, "Unable to parse config file")
	}

	if fc.LaunchctlPath != "" {
		c.LaunchctlPath = fc.LaunchctlPath
	}
	if fc.PListDir != "" {
		c.PListDir = fc.PListDir
	}
	if len(fc.LaunchdPaths) > 0 {
		c.LaunchdPaths = fc.LaunchdPaths
	}
	if fc.UsersDir != "" {
		c.UsersDir = fc.UsersDir
	}
	if fc.Timeout != "" {
		timeout, err := parseTimeout(fc.Timeout)
		if err != nil {
			return errors.SafeWrap(err, "Unable to parse timeout in config file (use seconds or a duration like 45s)")
		}
		c.Timeout = timeout
	}
	return nil
}

// parseTimeout reads a bare number as seconds.
func parseTimeout(value string) (time.Duration, error) {
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	return time.ParseDuration(value)
}

func getMacsvcHome() string {
	home := os.Getenv("MACSVC_HOME")
	if home != "" {
		return home
	}

	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("HOMEDRIVE"), os.Getenv("HOMEPATH"), ".macsvc")
	} else {
		return filepath.Join(os.Getenv("HOME"), ".macsvc")
	}
}
