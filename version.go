// Package foldline maps text buffer positions through soft wrapping and
// folding to display positions. The engine lives in package displaymap; the
// buffer it reads from lives in package buffer.
package foldline

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version in SemVer form, without the `v`.
func Version() string { return strings.TrimSpace(embeddedVersion) }

// VersionTag returns Version as a git tag.
func VersionTag() string { return "v" + Version() }

// IsSemver reports whether v is a SemVer 2.0.0 string.
func IsSemver(v string) bool { return semverRE.MatchString(strings.TrimSpace(v)) }
