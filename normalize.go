package targetver

import (
	"regexp"
	"strings"
)

// AnyToken is the literal string form that parses (and renders) as the
// wildcard version.
const AnyToken = "any"

var (
	shortPattern = regexp.MustCompile(`^\d+\.\d+$`)
	longPattern  = regexp.MustCompile(`^\d+(\.\d+){2,}$`)
)

// normalize canonicalizes a raw version string and classifies it. The empty
// canonical form indicates the wildcard. The only textual rewrite performed is
// prepending "0" to values with a leading dot (".5" becomes "0.5").
func normalize(raw string) (canonical string, isShort bool, err error) {
	fixed := raw
	if strings.HasPrefix(fixed, ".") {
		fixed = "0" + fixed
	}

	if fixed == AnyToken {
		return "", false, nil
	}

	switch {
	case shortPattern.MatchString(fixed):
		return fixed, true, nil
	case longPattern.MatchString(fixed):
		return fixed, false, nil
	}

	return "", false, newMalformedVersionError(raw)
}
