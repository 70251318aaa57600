package release

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"
)

// Version is a release version ordered by its numeric triple.
// Suffix carries any prerelease/build text and never affects ordering.
type Version struct {
	Major  uint64
	Minor  uint64
	Patch  uint64
	Suffix string
	// Raw is the text the version was parsed from, e.g. the published tag.
	Raw string
}

// ParseVersion parses tags such as "1.2.3", "v1.2.3" or "v2.0.0-beta.1".
// Any leading non-digit prefix is stripped before parsing.
func ParseVersion(s string) (*Version, error) {
	raw := strings.TrimSpace(s)
	trimmed := strings.TrimLeftFunc(raw, func(r rune) bool {
		return !unicode.IsDigit(r)
	})
	if trimmed == "" {
		return nil, fmt.Errorf("%w: %q", ErrParse, s)
	}

	sv, err := semver.NewVersion(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
	}

	suffix := sv.Prerelease()
	if meta := sv.Metadata(); meta != "" {
		suffix += "+" + meta
	}

	return &Version{
		Major:  sv.Major(),
		Minor:  sv.Minor(),
		Patch:  sv.Patch(),
		Suffix: suffix,
		Raw:    raw,
	}, nil
}

// MustParseVersion is like ParseVersion but panics on error.
func MustParseVersion(s string) *Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders the numeric triple.
func (v *Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Tag returns the release tag the version is published under. Parsed versions
// keep their tag verbatim; constructed ones render as v1.2.3 or v2.0.0-beta.1.
func (v *Version) Tag() string {
	if v.Raw != "" {
		return v.Raw
	}
	tag := "v" + v.String()
	switch {
	case v.Suffix == "":
	case strings.HasPrefix(v.Suffix, "+"):
		tag += v.Suffix
	default:
		tag += "-" + v.Suffix
	}
	return tag
}

// Compare returns 1, 0 or -1 comparing the (major, minor, patch) triples.
func (v *Version) Compare(other *Version) int {
	switch {
	case v.Major != other.Major:
		return cmpUint(v.Major, other.Major)
	case v.Minor != other.Minor:
		return cmpUint(v.Minor, other.Minor)
	default:
		return cmpUint(v.Patch, other.Patch)
	}
}

// IsNewerThan reports whether v is strictly greater than other.
func (v *Version) IsNewerThan(other *Version) bool {
	return v.Compare(other) > 0
}

func cmpUint(a, b uint64) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}
