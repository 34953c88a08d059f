// Package quiz generates the drill's transaction scenarios. Generation is
// fully deterministic: each round is driven by a pseudo-random source
// seeded from the round number, so a round can be regenerated identically
// for replay and for tests.
package quiz

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/abhisek/ledgerdrill/internal/journal"
)

// Question is one scenario prompt and its canonical expected entry.
// Expected always balances; that is a generator contract.
type Question struct {
	Prompt   string
	Expected []journal.Posting
}

const (
	// roundSeedBase offsets round seeds so round numbers don't collide
	// with other seed spaces.
	roundSeedBase = 1000

	// distractorSeedBase seeds the per-question amount distractor rng.
	distractorSeedBase = 5000
)

// BuildRound generates the questions for a round. Calling it again with
// the same arguments reproduces the same sequence.
func BuildRound(roundNo, count int) []Question {
	rng := rand.New(rand.NewSource(int64(roundSeedBase + roundNo)))
	tier := TierFor(roundNo)
	templates := Templates(tier)
	amounts := tierAmounts[tier]

	questions := make([]Question, 0, count)
	for i := 0; i < count; i++ {
		tmpl := templates[rng.Intn(len(templates))]
		x := drawAmount(rng, amounts)

		prompt := fmt.Sprintf("Q%d. %s", i+1, renderPrompt(tmpl.Prompt, x))
		questions = append(questions, Question{
			Prompt:   prompt,
			Expected: tmpl.Build(x),
		})
	}
	return questions
}

// DistractorRNG returns the seeded source for a question's amount options.
func DistractorRNG(roundNo, questionIndex int) *rand.Rand {
	return rand.New(rand.NewSource(int64(distractorSeedBase + roundNo + questionIndex)))
}

// drawAmount picks a stepped amount in [lo, hi].
func drawAmount(rng *rand.Rand, r amountRange) int64 {
	steps := (r.hi-r.lo)/r.step + 1
	return r.lo + r.step*rng.Int63n(steps)
}

// renderPrompt substitutes {x} and {d} placeholders.
func renderPrompt(pattern string, x int64) string {
	s := strings.ReplaceAll(pattern, "{x}", journal.FormatAmount(x))
	if strings.Contains(s, "{d}") {
		s = strings.ReplaceAll(s, "{d}", journal.FormatAmount(SettlementDiscount(x)))
	}
	return s
}
