package launchd

import (
	"strconv"
	"strings"
)

// ListEntry is one row of `launchctl list`.
type ListEntry struct {
	// PID is 0 when the job is loaded but has no process.
	PID    int
	Status string
	Label  string
}

func (e ListEntry) Running() bool {
	return e.PID > 0
}

// ParseList parses the tabular output of `launchctl list`, skipping the
// header row.
func ParseList(output string) []ListEntry {
	var entries []ListEntry
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "PID") {
			continue
		}

		cols := strings.SplitN(line, "\t", 3)
		if len(cols) < 3 {
			cols = strings.Fields(line)
			if len(cols) < 3 {
				continue
			}
			cols = []string{cols[0], cols[1], strings.Join(cols[2:], " ")}
		}

		entry := ListEntry{
			Status: strings.TrimSpace(cols[1]),
			Label:  strings.TrimSpace(cols[2]),
		}
		if pid, err := strconv.Atoi(strings.TrimSpace(cols[0])); err == nil {
			entry.PID = pid
		}
		entries = append(entries, entry)
	}
	return entries
}

// parseDisabled looks up label in the output of `launchctl print-disabled`.
// Lines look like `"com.example.job" => true` or, on newer releases,
// `"com.example.job" => disabled`.
func parseDisabled(output string, label string) bool {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, label) {
			continue
		}

		parts := strings.SplitN(line, "=>", 2)
		if len(parts) != 2 {
			continue
		}

		quoted := strings.Split(parts[0], "\"")
		if len(quoted) < 2 || quoted[1] != label {
			continue
		}

		status := strings.ToLower(parts[1])
		return strings.Contains(status, "true") || strings.Contains(status, "disabled")
	}
	return false
}
