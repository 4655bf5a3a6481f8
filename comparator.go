package targetver

// Compare compares this version to another long-form version.
// This returns -1, 0, or 1 if this version is smaller,
// equal, or larger than the other version, respectively.
//
// Both operands must be long form: comparing a short or wildcard value returns
// an IncomparableError (expand short values with ToLongMin/ToLongMax first).
// Components are compared numerically left to right ("1.2.10" > "1.2.9");
// when one operand has more components and the shared prefix is equal, the
// missing components are treated as zero.
func (v *Version) Compare(other *Version) (int, error) {
	return v.compare(other, "compare")
}

// LessThan reports whether this version orders strictly before the other.
func (v *Version) LessThan(other *Version) (bool, error) {
	result, err := v.compare(other, "lessThan")
	return result < 0, err
}

// LessThanOrEqual reports whether this version orders before or equivalent to
// the other.
func (v *Version) LessThanOrEqual(other *Version) (bool, error) {
	result, err := v.compare(other, "lessThanOrEqual")
	return result <= 0, err
}

// GreaterThan reports whether this version orders strictly after the other.
func (v *Version) GreaterThan(other *Version) (bool, error) {
	result, err := v.compare(other, "greaterThan")
	return result > 0, err
}

// GreaterThanOrEqual reports whether this version orders after or equivalent
// to the other.
func (v *Version) GreaterThanOrEqual(other *Version) (bool, error) {
	result, err := v.compare(other, "greaterThanOrEqual")
	return result >= 0, err
}

// compare is the single comparison path: every exported ordering method runs
// through here with the receiver as the left operand, so the memoization
// cache (keyed by the ordered operand pair) always sees operands in
// caller-given order.
func (v *Version) compare(other *Version, operation string) (int, error) {
	if other == nil {
		return -1, ErrNoVersionProvided
	}

	if !v.IsLong() || !other.IsLong() {
		return -1, newIncomparableError(v, other, operation)
	}

	if result, ok := v.cache.comparison(v.raw, other.raw); ok {
		return result, nil
	}

	left, err := v.object()
	if err != nil {
		return -1, err
	}
	right, err := other.object()
	if err != nil {
		return -1, err
	}

	result := left.Compare(right)
	v.cache.memoizeComparison(v.raw, other.raw, result)

	return result, nil
}
