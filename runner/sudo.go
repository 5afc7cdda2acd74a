package runner

import (
	"os"
	"os/exec"
)

// Sudo runs a command as root, prompting on the terminal for a password
// when needed.
type Sudo struct{}

func (s *Sudo) Run(args ...string) error {
	var (
		invocation = append([]string{"-S"}, args...)
		cmd        = exec.Command("sudo", invocation...)
	)

	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	return cmd.Run()
}

// asUser rewrites an invocation so it runs as the given user without
// prompting.
func asUser(user string, name string, args []string) (string, []string) {
	if user == "" {
		return name, args
	}

	invocation := append([]string{"-n", "-u", user, name}, args...)
	return "sudo", invocation
}
