// Package ninja reports the build version of the ninja Markdown editor. The
// editor component lives in package editor; the command in cmd/ninja.
package ninja

import (
	_ "embed"
	"regexp"
	"runtime/debug"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version returns the release version without the leading "v".
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version as a git tag.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v is a SemVer 2.0.0 string.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// Revision returns the first 12 characters of the VCS revision stamped into
// the binary, with a "+dirty" suffix for modified trees. It is "" for builds
// without VCS information, such as tests.
func Revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	return shortRevision(rev, dirty)
}

func shortRevision(rev string, dirty bool) string {
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if rev != "" && dirty {
		rev += "+dirty"
	}
	return rev
}

// Describe returns VersionTag followed by the revision when one is known.
func Describe() string {
	if rev := Revision(); rev != "" {
		return VersionTag() + " (" + rev + ")"
	}
	return VersionTag()
}

// UserAgent is the User-Agent header value for outgoing requests.
func UserAgent() string {
	return "ninja/" + Version()
}
