package billing

import (
	"time"

	"cardwise/internal/model"
)

// Recommend computes the projected float for every card, in input order.
func Recommend(cards []model.Card, purchase time.Time, overflow DayOverflow) []model.Recommendation {
	if len(cards) == 0 {
		return nil
	}

	recs := make([]model.Recommendation, 0, len(cards))
	for _, c := range cards {
		cycle := ProjectCycle(c, purchase, overflow)
		recs = append(recs, model.Recommendation{
			Card:           c,
			DaysUntilDue:   DaysUntilDue(cycle.PaymentDueDate, purchase),
			PaymentDueDate: cycle.PaymentDueDate,
		})
	}
	return recs
}

// SelectBest returns the card with the longest float for a purchase date, or
// nil for an empty wallet. Ties go to the card listed first, so repeated runs
// over the same wallet are deterministic.
func SelectBest(cards []model.Card, purchase time.Time, overflow DayOverflow) *model.Recommendation {
	recs := Recommend(cards, purchase, overflow)
	if len(recs) == 0 {
		return nil
	}

	best := recs[0]
	for _, r := range recs[1:] {
		if r.DaysUntilDue > best.DaysUntilDue {
			best = r
		}
	}
	return &best
}
