package quiz

import (
	"math/rand"
	"sort"

	"github.com/abhisek/ledgerdrill/internal/journal"
)

// maxAmountOptions bounds the amount picker so the UI choice list stays
// manageable.
const maxAmountOptions = 18

// AmountOptions builds the amount choices for a question: the true amounts
// plus near-miss distractors at fixed offsets and a few random values in a
// range derived from the answer. Deduplicated, sorted, capped.
func AmountOptions(expected []journal.Posting, rng *rand.Rand) []int64 {
	seen := make(map[int64]bool)
	var correct []int64
	for _, p := range expected {
		if !seen[p.Amount] {
			seen[p.Amount] = true
			correct = append(correct, p.Amount)
		}
	}
	sort.Slice(correct, func(i, j int) bool { return correct[i] < correct[j] })

	merged := make(map[int64]bool)
	for _, a := range correct {
		merged[a] = true
		for _, delta := range []int64{50, 100, 200} {
			if a-delta > 0 {
				merged[a-delta] = true
			}
			merged[a+delta] = true
		}
	}

	if len(correct) > 0 {
		lo := correct[0] - 500
		if lo < 50 {
			lo = 50
		}
		hi := correct[len(correct)-1] + 500
		steps := (hi-lo)/50 + 1
		for i := 0; i < 3; i++ {
			merged[lo+50*rng.Int63n(steps)] = true
		}
	}

	out := make([]int64, 0, len(merged))
	for a := range merged {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	if len(out) > maxAmountOptions {
		out = out[:maxAmountOptions]
	}
	return out
}
