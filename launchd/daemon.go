package launchd

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"code.cloudfoundry.org/macsvc/errors"
	"howett.net/plist"
)

// AddDaemon writes the job definition to <PListDir>/<Label>.plist. The
// job is not loaded; use Enable and Start for that.
func (m *Manager) AddDaemon(spec DaemonSpec) error {
	if spec.Label == "" {
		return errors.SafeWrap(nil, "a daemon needs a Label")
	}
	if err := validateLabel(spec.Label); err != nil {
		return err
	}

	data, err := plist.MarshalIndent(spec.plist(), plist.XMLFormat, "  ")
	if err != nil {
		return errors.SafeWrap(err, "Failed to encode plist")
	}

	if err := os.MkdirAll(m.PListDir, 0755); err != nil {
		return err
	}

	plistPath := m.plistPath(spec.Label)
	if err := ioutil.WriteFile(plistPath, data, 0644); err != nil {
		return errors.SafeWrap(err, "Failed to write plist")
	}
	// WriteFile does not change the mode of an existing file.
	if err := os.Chmod(plistPath, 0644); err != nil {
		return err
	}

	m.invalidate()
	return nil
}

// RemoveDaemon stops the job if it is loaded and deletes its plist from
// PListDir. Removing a daemon that does not exist succeeds.
func (m *Manager) RemoveDaemon(label string) error {
	if err := validateLabel(label); err != nil {
		return err
	}
	defer m.invalidate()

	if m.Available(label) && m.Enabled(label) {
		if err := m.Stop(label); err != nil {
			return err
		}
	}

	err := os.Remove(m.plistPath(label))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (m *Manager) plistPath(label string) string {
	return filepath.Join(m.PListDir, label+".plist")
}

// validateLabel keeps the plist inside PListDir.
func validateLabel(label string) error {
	if strings.ContainsAny(label, `/\`) || strings.Contains(label, "..") {
		return errors.SafeWrap(nil, "invalid daemon label: "+label)
	}
	return nil
}
