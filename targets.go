package targetver

// Targets decides whether this (possibly short or wildcard) value accepts the
// given concrete release. The candidate must be long form, otherwise an
// IncomparableError is returned.
//
// Decision order, first match wins:
//  1. a wildcard accepts everything
//  2. a short filter whose two components equal the candidate's
//     two-component prefix accepts (cheap short-circuit covering the common
//     case without numeric comparison)
//  3. a long filter accepts only a compare-equal candidate
//  4. a short filter whose prefix differs accepts candidates within
//     [ToLongMin, ToLongMax]
func (v *Version) Targets(candidate *Version) (bool, error) {
	if candidate == nil {
		return false, ErrNoVersionProvided
	}

	if !candidate.IsLong() {
		return false, newIncomparableError(v, candidate, "targets")
	}

	if v.IsAny() {
		return true, nil
	}

	if v.isShort && v.raw == candidate.Short() {
		return true, nil
	}

	if v.IsLong() {
		result, err := v.compare(candidate, "targets")
		if err != nil {
			return false, err
		}
		return result == 0, nil
	}

	// the filter is short with a differing major or minor: check the
	// candidate against the expanded [x.y.0, x.y.99] range. Both bounds are
	// long, so neither comparison can fail here.
	atLeast, err := v.ToLongMin().compare(candidate, "targets")
	if err != nil {
		return false, err
	}
	if atLeast > 0 {
		return false, nil
	}

	atMost, err := v.ToLongMax().compare(candidate, "targets")
	if err != nil {
		return false, err
	}
	return atMost >= 0, nil
}
