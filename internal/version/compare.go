package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rxtech-lab/argo-indicator/pkg/errors"
)

// CheckConfigVersion reports whether a configuration written for
// configVersion can be loaded by engineVersion.
//
// Rules:
//   - "main" on either side (development build) skips the check
//   - major versions must match
//   - the engine must be at least the configured version, since a newer
//     config may carry settings an older engine does not know
//
// Examples:
//   - Engine 1.2.0, Config 1.2.0 -> OK
//   - Engine 1.4.1, Config 1.2.0 -> OK
//   - Engine 1.1.0, Config 1.2.0 -> ERROR (engine too old)
//   - Engine 2.0.0, Config 1.2.0 -> ERROR (major differs)
func CheckConfigVersion(engineVersion, configVersion string) error {
	engineVersion = strings.TrimPrefix(engineVersion, "v")
	configVersion = strings.TrimPrefix(configVersion, "v")

	if engineVersion == "main" || configVersion == "main" {
		return nil
	}

	engineSemver, err := semver.NewVersion(engineVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid engine version '%s'", engineVersion)
	}

	configSemver, err := semver.NewVersion(configVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid config version '%s'", configVersion)
	}

	if engineSemver.Major() != configSemver.Major() {
		return errors.Newf(errors.ErrCodeConfigVersionMismatch,
			"major version mismatch: engine is %d.x.x but config requires %d.x.x",
			engineSemver.Major(), configSemver.Major())
	}

	// prerelease tags are ignored so 1.2.0-alpha satisfies a 1.2.0 config
	constraint, err := semver.NewConstraint(">= " + core(configSemver).String())
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid config version '%s'", configVersion)
	}

	if !constraint.Check(core(engineSemver)) {
		return errors.Newf(errors.ErrCodeConfigVersionMismatch,
			"engine %s is older than config version %s", engineSemver, configSemver)
	}

	return nil
}

func core(v *semver.Version) *semver.Version {
	return semver.New(v.Major(), v.Minor(), v.Patch(), "", "")
}
