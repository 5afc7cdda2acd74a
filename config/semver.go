package config

import (
	"fmt"
	"strconv"
	"strings"

	"code.cloudfoundry.org/macsvc/errors"
)

// Version is the CLI version stamped in at build time, e.g. "v1.2.3-rc.4".
type Version struct {
	Major      int
	Minor      int
	Build      int
	PreRelease string
	Original   string
}

func NewSemver(v string) (*Version, error) {
	version := &Version{Original: v}
	if v == "" {
		return version, nil
	}

	core := strings.TrimPrefix(v, "v")
	if i := strings.Index(core, "-"); i >= 0 {
		version.PreRelease = core[i+1:]
		core = core[:i]
	}

	fields := []*int{&version.Major, &version.Minor, &version.Build}
	for i, part := range strings.SplitN(core, ".", len(fields)) {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.SafeWrap(err, fmt.Sprintf("invalid version %q", v))
		}
		*fields[i] = n
	}
	return version, nil
}

func (v *Version) String() string {
	if v.Original != "" {
		return v.Original
	}
	if v.PreRelease != "" {
		return fmt.Sprintf("%d.%d.%d-%s", v.Major, v.Minor, v.Build, v.PreRelease)
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Build)
}
