package engine

// SlotBounds computes the effective value bounds for the slot at index in a
// state snapshot: the largest occupied value at a lower index and the
// smallest occupied value at a higher index. A value v fits the slot iff
// lower <= v <= upper. hasLower/hasUpper report whether a bound exists on
// that side; an unbounded side accepts any value.
func SlotBounds(slots []int, index int) (lower, upper int, hasLower, hasUpper bool) {
	for i := 0; i < index && i < len(slots); i++ {
		if slots[i] == EmptySlot {
			continue
		}
		if !hasLower || slots[i] > lower {
			lower = slots[i]
			hasLower = true
		}
	}
	for i := index + 1; i < len(slots); i++ {
		if slots[i] == EmptySlot {
			continue
		}
		if !hasUpper || slots[i] < upper {
			upper = slots[i]
			hasUpper = true
		}
	}
	return lower, upper, hasLower, hasUpper
}

// OccupiedValues returns the occupied values of a snapshot in index order,
// skipping empties. For a grid that honors the ordering invariant the result
// is non-decreasing.
func OccupiedValues(slots []int) []int {
	var values []int
	for _, v := range slots {
		if v != EmptySlot {
			values = append(values, v)
		}
	}
	return values
}

// IsNonDecreasing reports whether values reads as a non-decreasing sequence.
func IsNonDecreasing(values []int) bool {
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return false
		}
	}
	return true
}
