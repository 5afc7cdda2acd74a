package launchd

import (
	"os"
	"strings"
)

// Service is a launchd job definition found on disk.
type Service struct {
	FileName string
	FilePath string
	Plist    map[string]interface{}
}

func (s *Service) Label() string {
	label, _ := s.Plist["Label"].(string)
	return label
}

// IsAgent reports whether the job belongs to a user session rather than
// the system domain.
func (s *Service) IsAgent() bool {
	return strings.Contains(s.FilePath, "LaunchAgents")
}

// AlwaysRunning reports whether launchd keeps the job alive
// unconditionally, either through KeepAlive=true or a KeepAlive.PathState
// condition that currently holds.
func (s *Service) AlwaysRunning() bool {
	switch keepAlive := s.Plist["KeepAlive"].(type) {
	case bool:
		return keepAlive
	case map[string]interface{}:
		pathState, _ := keepAlive["PathState"].(map[string]interface{})
		for path, value := range pathState {
			want, ok := value.(bool)
			if !ok {
				continue
			}
			if want == exists(path) {
				return true
			}
		}
	}
	return false
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
