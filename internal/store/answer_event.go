package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/ledgerdrill/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetRoundNo(data.RoundNo).
		SetQuestionNo(data.QuestionNo).
		SetPrompt(data.Prompt).
		SetExpectedEntry(data.ExpectedEntry).
		SetSubmittedEntry(data.SubmittedEntry).
		SetCorrect(data.Correct).
		SetAttempt(data.Attempt).
		SetOutcome(data.Outcome).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) RoundStats(ctx context.Context) ([]RoundStat, error) {
	answers, err := r.client.AnswerEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	byRound := make(map[int]*RoundStat)
	for _, e := range answers {
		st := byRound[e.RoundNo]
		if st == nil {
			st = &RoundStat{RoundNo: e.RoundNo}
			byRound[e.RoundNo] = st
		}
		st.Attempts++
		if e.Attempt == 1 {
			st.Questions++
		}
		if e.Correct {
			st.Correct++
		}
	}

	hints, err := r.client.HintEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query hint events: %w", err)
	}
	for _, h := range hints {
		if st := byRound[h.RoundNo]; st != nil {
			st.Hints++
		} else {
			byRound[h.RoundNo] = &RoundStat{RoundNo: h.RoundNo, Hints: 1}
		}
	}

	stats := make([]RoundStat, 0, len(byRound))
	for _, st := range byRound {
		stats = append(stats, *st)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].RoundNo < stats[j].RoundNo })
	return stats, nil
}

func (r *eventRepo) RoundAccuracy(ctx context.Context, roundNo int) (float64, error) {
	answers, err := r.client.AnswerEvent.Query().
		Where(answerevent.RoundNo(roundNo)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query round accuracy: %w", err)
	}
	if len(answers) == 0 {
		return 0, nil
	}

	correct := 0
	for _, e := range answers {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(answers)), nil
}
