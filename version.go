package sasshost

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// minProtocolVersion is the oldest Sass Embedded Protocol version this
// driver speaks; the health check in §4.5 accepts anything from here up
// to, but excluding, its next major version.
const minProtocolVersionStr = "2.0.0"

var minProtocolVersion = semver.MustParse(minProtocolVersionStr)

// Versions reports the identity of the running compiler, populated from
// the VersionResponse the health check receives (§3 "Versions").
type Versions struct {
	ProtocolVersion       string
	PackageVersion        string
	CompilerVersion       string
	ImplementationVersion string
	ImplementationName    string
}

// checkProtocolVersion implements §4.5's health-check bound:
// minProtocolVersion ≤ v < nextMajor(minProtocolVersion).
func checkProtocolVersion(v string) error {
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("malformed protocol_version %q: %w", v, err)
	}
	nextMajor := minProtocolVersion.IncMajor()
	if parsed.LessThan(minProtocolVersion) || !parsed.LessThan(&nextMajor) {
		return fmt.Errorf("protocol_version %q is outside the supported range [%s, %s)", v, minProtocolVersion, nextMajor.String())
	}
	return nil
}
