package coach

import (
	"fmt"
	"strings"

	"github.com/abhisek/ledgerdrill/internal/journal"
)

const explainSystemPrompt = `You are a patient bookkeeping coach for students learning double-entry. A learner just got a journal entry wrong after two attempts and has been shown the model answer. Explain it so they get it right next time.`

func buildExplainUserMessage(input ExplainInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Round: %d\n", input.RoundNo))
	b.WriteString(fmt.Sprintf("Transaction: %s\n", input.Prompt))

	b.WriteString("\nModel entry:\n")
	b.WriteString(journal.Format(input.Expected))
	b.WriteString("\n")

	if len(input.Submitted) > 0 {
		b.WriteString("\nLearner's attempt:\n")
		b.WriteString(journal.Format(input.Submitted))
		b.WriteString("\n")
	}

	if input.Hint != "" {
		b.WriteString(fmt.Sprintf("\nHint already shown: %s\n", input.Hint))
	}

	b.WriteString(`
Instructions:
1. Walk through the model entry one posting at a time: name the account, say whether it is debited or credited, and why. Use the dual-aspect framing (what the business receives vs. what it gives up).
2. Give one short rule of thumb the learner can reuse on similar transactions.
3. Point out the specific mistake visible in the learner's attempt. If no attempt is shown, name the most common mistake for this entry type.
4. Use plain text. Amounts are in pounds. Do not invent accounts that are not in the model entry.`)

	return b.String()
}
