/*
Package targetver models release version values for package-compatibility
decisions: a version is either the wildcard ("any"), a short form with exactly
two numeric components (major.minor), or a long form with three or more
components (major.minor.patch...). Values are immutable, ordered numerically
component-by-component, and support range membership via Targets.
*/
package targetver

import (
	"fmt"
	"strings"
	"sync"

	hashiVer "github.com/anchore/go-version"
	"github.com/mitchellh/hashstructure/v2"
)

// Version is an immutable release version value. The zero canonical form
// represents the wildcard, which matches every candidate during targeting.
// Construct values through Parse (or a Cache); never mutate them.
type Version struct {
	raw     string // canonical form; empty means wildcard
	isShort bool
	cache   *Cache

	richOnce sync.Once
	rich     *hashiVer.Version
	richErr  error
}

// Parse constructs a version value through the process-wide default cache.
// The empty string is treated as "unspecified" and yields the wildcard, as
// does the literal "any" token.
func Parse(raw string) (*Version, error) {
	return defaultCache.Parse(raw)
}

// MustParse is meant for testing only, do not use within the library.
func MustParse(raw string) *Version {
	v, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// Any returns a wildcard version value.
func Any() *Version {
	return defaultCache.Any()
}

// IsAny indicates the wildcard value. A wildcard is neither short nor long.
func (v *Version) IsAny() bool {
	return v.raw == ""
}

// IsShort indicates a value with exactly two numeric components.
func (v *Version) IsShort() bool {
	return v.isShort
}

// IsLong indicates a value with three or more numeric components.
func (v *Version) IsLong() bool {
	return v.raw != "" && !v.isShort
}

// ToLongMin expands a short value x.y to the long value x.y.0. Long and
// wildcard values are returned unchanged; callers must use the returned value.
func (v *Version) ToLongMin() *Version {
	if !v.isShort {
		return v
	}
	return v.cache.intern(v.raw+".0", false)
}

// ToLongMax expands a short value x.y to the long value x.y.99. The 99 bound
// is a fixed convention for "any patch the short form could denote", not a
// real ceiling on patch numbers; releases beyond patch 99 fall outside the
// expanded range. Long and wildcard values are returned unchanged.
func (v *Version) ToLongMax() *Version {
	if !v.isShort {
		return v
	}
	return v.cache.intern(v.raw+".99", false)
}

// Short returns the two-component (major.minor) prefix of the canonical form.
// For wildcard values the result is the empty string; callers should check
// IsAny first.
func (v *Version) Short() string {
	if v.isShort || v.raw == "" {
		return v.raw
	}
	fields := strings.SplitN(v.raw, ".", 3)
	return fields[0] + "." + fields[1]
}

// String returns the canonical form, or the "any" token for the wildcard.
// For all non-wildcard values Parse(v.String()) round-trips to an equal value.
func (v *Version) String() string {
	if v.raw == "" {
		return AnyToken
	}
	return v.raw
}

// Equal reports whether both values have the same canonical form. Wildcard
// values are mutually equal. Note this is strictly textual: "1.2.3" and
// "1.2.3.0" are unequal even though Compare orders them as equivalent.
func (v *Version) Equal(other *Version) bool {
	if other == nil {
		return false
	}
	return v.raw == other.raw
}

// Fingerprint returns a stable hash of the canonical form, or the empty
// string if hashing fails. Equal values always share a fingerprint.
func (v *Version) Fingerprint() string {
	f, err := hashstructure.Hash(v.raw, hashstructure.FormatV2, &hashstructure.HashOptions{
		ZeroNil: true,
	})
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%016x", f)
}

// Segments returns the numeric components of the canonical form, or nil for
// the wildcard.
func (v *Version) Segments() []int {
	if v.raw == "" {
		return nil
	}
	obj, err := v.object()
	if err != nil {
		return nil
	}
	segments := obj.Segments()
	count := strings.Count(v.raw, ".") + 1
	if count < len(segments) {
		segments = segments[:count]
	}
	return segments
}

// object lazily parses the canonical form into a rich version object used for
// component-wise numeric comparison. The result is cached per instance.
func (v *Version) object() (*hashiVer.Version, error) {
	v.richOnce.Do(func() {
		v.rich, v.richErr = hashiVer.NewVersion(v.raw)
		if v.richErr != nil {
			v.richErr = fmt.Errorf("unable to parse version components from %q: %w", v.raw, v.richErr)
		}
	})
	return v.rich, v.richErr
}
