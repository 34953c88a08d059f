package round

import "time"

// roundStartedMsg confirms the round start event write completed.
type roundStartedMsg struct {
	Err error
}

// answerLoggedMsg confirms an answer event write completed.
type answerLoggedMsg struct {
	Err error
}

// hintLoggedMsg confirms a hint event write completed.
type hintLoggedMsg struct {
	Err error
}

// roundEndedMsg confirms the round end event write completed.
type roundEndedMsg struct {
	Err error
}

// coachPollMsg drives polling for a pending coach explanation.
type coachPollMsg time.Time
