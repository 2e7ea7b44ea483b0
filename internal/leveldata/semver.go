package leveldata

import (
	"fmt"

	mm "github.com/Masterminds/semver/v3"
)

// FormatVersion is a thin wrapper around Masterminds/semver/v3, used to
// gate which engine version a level file was authored against.
type FormatVersion struct {
	v *mm.Version
}

// supportedConstraint is the range of level-data format versions this
// build of the engine can load. Bumped only on a breaking change to the
// level JSON schema.
var supportedConstraint *mm.Constraints

func init() {
	c, err := mm.NewConstraint(">=1.0.0 <2.0.0")
	if err != nil {
		panic(err)
	}
	supportedConstraint = c
}

// ParseFormatVersion parses raw as a level format version.
func ParseFormatVersion(raw string) (FormatVersion, error) {
	v, err := mm.NewVersion(raw)
	if err != nil {
		return FormatVersion{}, fmt.Errorf("leveldata: parse format version %q: %w", raw, err)
	}
	return FormatVersion{v: v}, nil
}

// Supported reports whether fv satisfies supportedConstraint.
func (fv FormatVersion) Supported() bool {
	if fv.v == nil {
		return false
	}
	return supportedConstraint.Check(fv.v)
}

func (fv FormatVersion) String() string {
	if fv.v == nil {
		return "<invalid>"
	}
	return fv.v.String()
}
