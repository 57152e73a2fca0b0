package quiz

import "math"

// Band is a qualitative score tier.
type Band string

const (
	BandExcellent Band = "excellent"
	BandGood      Band = "good"
	BandAverage   Band = "average"
	BandNeedsWork Band = "needs-work"
)

// Band thresholds are display tiers on the rounded percentage.
const (
	excellentThreshold = 80
	goodThreshold      = 60
	averageThreshold   = 40
)

// BandFor returns the band for a percentage score.
func BandFor(percentage int) Band {
	switch {
	case percentage >= excellentThreshold:
		return BandExcellent
	case percentage >= goodThreshold:
		return BandGood
	case percentage >= averageThreshold:
		return BandAverage
	default:
		return BandNeedsWork
	}
}

// BreakdownItem pairs a question with the learner's answer to it.
type BreakdownItem struct {
	Question Question
	Record   AnswerRecord
}

// Summary is the result of a finished quiz run.
type Summary struct {
	Score      int
	Total      int
	Percentage int
	Band       Band
	Breakdown  []BreakdownItem
}

// Summarize scores log against bank. Records pair with questions by position,
// which is the order the session produced them in. The total is the bank
// length, so an unfinished log scores unanswered questions as wrong. Records
// past the end of the bank have no question and are ignored.
func Summarize(bank []Question, log []AnswerRecord) Summary {
	if len(log) > len(bank) {
		log = log[:len(bank)]
	}
	sum := Summary{
		Total:     len(bank),
		Breakdown: make([]BreakdownItem, 0, len(log)),
	}
	for i, rec := range log {
		if rec.IsCorrect {
			sum.Score++
		}
		sum.Breakdown = append(sum.Breakdown, BreakdownItem{Question: bank[i], Record: rec})
	}
	if sum.Total > 0 {
		sum.Percentage = int(math.Round(float64(sum.Score) / float64(sum.Total) * 100))
	}
	sum.Band = BandFor(sum.Percentage)
	return sum
}
