package launchd

type DaemonSpec struct {
	Label                string
	EnvironmentVariables map[string]string
	Program              string
	ProgramArguments     []string
	SessionType          string
	KeepAlive            bool
	RunAtLoad            bool
	Sockets              map[string]string
	StdoutPath           string
	StderrPath           string
}

type socketPlist struct {
	SockPathMode int    `plist:"SockPathMode"`
	SockPathName string `plist:"SockPathName"`
}

type daemonPlist struct {
	Label                string                 `plist:"Label"`
	EnvironmentVariables map[string]string      `plist:"EnvironmentVariables,omitempty"`
	Program              string                 `plist:"Program,omitempty"`
	SessionType          string                 `plist:"LimitLoadToSessionType,omitempty"`
	ProgramArguments     []string               `plist:"ProgramArguments,omitempty"`
	KeepAlive            bool                   `plist:"KeepAlive"`
	RunAtLoad            bool                   `plist:"RunAtLoad"`
	Sockets              map[string]socketPlist `plist:"Sockets,omitempty"`
	StdoutPath           string                 `plist:"StandardOutPath,omitempty"`
	StderrPath           string                 `plist:"StandardErrorPath,omitempty"`
}

func (spec DaemonSpec) plist() daemonPlist {
	p := daemonPlist{
		Label:                spec.Label,
		EnvironmentVariables: spec.EnvironmentVariables,
		Program:              spec.Program,
		SessionType:          spec.SessionType,
		ProgramArguments:     spec.ProgramArguments,
		KeepAlive:            spec.KeepAlive,
		RunAtLoad:            spec.RunAtLoad,
		StdoutPath:           spec.StdoutPath,
		StderrPath:           spec.StderrPath,
	}

	if len(spec.Sockets) > 0 {
		p.Sockets = make(map[string]socketPlist, len(spec.Sockets))
		for name, path := range spec.Sockets {
			p.Sockets[name] = socketPlist{SockPathMode: 0666, SockPathName: path}
		}
	}
	return p
}
