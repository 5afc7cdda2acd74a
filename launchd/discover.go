package launchd

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"code.cloudfoundry.org/macsvc/errors"
	"code.cloudfoundry.org/macsvc/runner"
	"howett.net/plist"
)

// AvailableServices returns every job definition in the launchd
// directories keyed by lower-cased Label. Results are cached until refresh
// is requested or a daemon is added or removed.
func (m *Manager) AvailableServices(refresh bool) (map[string]*Service, error) {
	services, _, err := m.availableServices(refresh)
	return services, err
}

func (m *Manager) availableServices(refresh bool) (map[string]*Service, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.services != nil && !refresh {
		return m.services, true, nil
	}

	services := map[string]*Service{}
	for _, searchPath := range m.searchPaths() {
		// Walk does not descend into a root that is itself a symlink.
		dir, err := filepath.EvalSymlinks(searchPath)
		if err != nil {
			m.logf("launchd: skipping %s: %s", searchPath, err)
			continue
		}

		err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				if path == dir {
					return filepath.SkipDir
				}
				m.logf("launchd: skipping %s: %s", path, err)
				return nil
			}
			if info.IsDir() || !strings.HasSuffix(info.Name(), ".plist") {
				return nil
			}

			truePath, err := filepath.EvalSymlinks(path)
			if err != nil {
				m.logf("launchd: skipping broken link %s", path)
				return nil
			}

			m.logf("launchd: gathering service info for %s", truePath)
			contents, err := m.readPlist(truePath)
			if err != nil {
				m.logf("launchd: skipping unreadable plist %s: %s", truePath, err)
				return nil
			}

			svc := &Service{
				FileName: info.Name(),
				FilePath: truePath,
				Plist:    contents,
			}

			key := strings.ToLower(svc.Label())
			if key == "" {
				key = strings.ToLower(info.Name())
			}
			services[key] = svc
			return nil
		})
		if err != nil {
			return nil, false, errors.SafeWrap(err, "Failed to scan launchd directories")
		}
	}

	m.services = services
	return services, false, nil
}

func (m *Manager) searchPaths() []string {
	paths := append([]string{}, m.LaunchdPaths...)

	if m.UsersDir == "" {
		return paths
	}

	users, err := ioutil.ReadDir(m.UsersDir)
	if err != nil {
		return paths
	}
	for _, user := range users {
		agents := filepath.Join(m.UsersDir, user.Name(), "Library", "LaunchAgents")
		if info, err := os.Stat(agents); err == nil && info.IsDir() {
			paths = append(paths, agents)
		}
	}
	return paths
}

// readPlist decodes XML, binary and OpenStep plists. Anything the decoder
// rejects is handed to plutil for conversion to XML.
func (m *Manager) readPlist(path string) (map[string]interface{}, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	contents := map[string]interface{}{}
	if _, err := plist.Unmarshal(data, &contents); err == nil {
		return contents, nil
	}

	result, err := m.Runner.Run(runner.Options{}, "/usr/bin/plutil", "-convert", "xml1", "-o", "-", "--", path)
	if err != nil {
		return nil, err
	}
	if result.ExitCode != 0 {
		return nil, errors.SafeWrap(nil, "plutil could not convert "+path+": "+result.Stderr)
	}

	contents = map[string]interface{}{}
	if _, err := plist.Unmarshal([]byte(result.Stdout), &contents); err != nil {
		return nil, err
	}
	return contents, nil
}

func (m *Manager) invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.services = nil
}

func nameInServices(name string, services map[string]*Service) *Service {
	if svc, ok := services[name]; ok {
		return svc
	}

	for _, svc := range services {
		if strings.ToLower(svc.FilePath) == name {
			return svc
		}
		basename := strings.TrimSuffix(svc.FileName, filepath.Ext(svc.FileName))
		if strings.ToLower(basename) == name {
			return svc
		}
	}
	return nil
}
