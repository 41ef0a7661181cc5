package game

// Score marks guess against target using the two-pass algorithm.
//
// Pass 1:
//   - Exact matches are Correct; the matched target letter is consumed.
//
// Pass 2:
//   - Each remaining guess letter is Present if an unconsumed copy exists in
//     the target (the leftmost one is consumed), Absent otherwise.
//
// A letter is never marked Correct or Present more times than it occurs in
// the target. Returns nil if the two words differ in length.
func Score(target, guess string) AttemptResult {
	t := []rune(target)
	g := []rune(guess)
	if len(t) != len(g) {
		return nil
	}

	res := make(AttemptResult, len(g))
	const consumed rune = 0

	// First pass: exact matches.
	for i := range g {
		res[i].Letter = g[i]
		if g[i] == t[i] {
			res[i].Mark = MarkCorrect
			t[i] = consumed
		}
	}

	// Second pass: misplaced letters against what is left.
	for i := range g {
		if res[i].Mark == MarkCorrect {
			continue
		}
		res[i].Mark = MarkAbsent
		for j := range t {
			if t[j] != consumed && t[j] == g[i] {
				res[i].Mark = MarkPresent
				t[j] = consumed
				break
			}
		}
	}
	return res
}
