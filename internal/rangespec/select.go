package rangespec

// Set holds the zero-based unit indices chosen by a resolved Range.
type Set map[int]struct{}

// Contains reports whether i is in s.
func (s Set) Contains(i int) bool {
	_, ok := s[i]
	return ok
}

// Select resolves r against a line of n units and returns the indices it
// covers. Degenerate ranges select nothing.
//
// Outside complement mode a range whose bounds fall outside the line is
// dropped as a whole. Complement mode skips that check so that the inverse
// of an empty inner range is the whole line.
func Select(r Range, n int, complement bool) Set {
	set := Set{}
	if r.Step == 0 {
		return set
	}

	if !complement && !inBounds(r, n) {
		return set
	}

	start, end := resolve(r.Start, n), min(resolve(r.End, n), n)
	if start < 0 || start >= end {
		return set
	}

	step := r.Step
	if step < 0 {
		step = -step
	}
	for i := start; ; i += step {
		set[i] = struct{}{}
		// also stops a step near math.MaxInt from overflowing i
		if step <= 0 || end-i <= step {
			break
		}
	}
	return set
}

func inBounds(r Range, n int) bool {
	startOK := -n <= r.Start && r.Start < n
	endOK := -n <= r.End && r.End != 0 && r.End <= n
	return startOK && endOK
}

func resolve(i, n int) int {
	if i < 0 {
		return n + i
	}
	return i
}
