package game

// KeyboardState maps each guessed letter to the best mark seen this round.
type KeyboardState map[rune]Mark

// Merge folds an attempt into the state. Marks only ever upgrade
// (absent → present → correct); a correct letter stays correct.
func (k KeyboardState) Merge(a AttemptResult) {
	for _, t := range a {
		if t.Mark.rank() > k[t.Letter].rank() {
			k[t.Letter] = t.Mark
		}
	}
}

// Clone returns an independent copy.
func (k KeyboardState) Clone() KeyboardState {
	out := make(KeyboardState, len(k))
	for r, m := range k {
		out[r] = m
	}
	return out
}
