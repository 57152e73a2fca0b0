package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandFor(t *testing.T) {
	tests := []struct {
		pct  int
		want Band
	}{
		{100, BandExcellent},
		{80, BandExcellent},
		{79, BandGood},
		{60, BandGood},
		{59, BandAverage},
		{40, BandAverage},
		{39, BandNeedsWork},
		{0, BandNeedsWork},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BandFor(tt.pct), "percentage %d", tt.pct)
	}
}

func TestSummarizeRounding(t *testing.T) {
	bank := testBank(3)
	log := []AnswerRecord{
		Evaluate(bank[0], bank[0].CorrectOptionIndex),
		Evaluate(bank[1], bank[1].CorrectOptionIndex),
		Evaluate(bank[2], (bank[2].CorrectOptionIndex+1)%OptionCount),
	}

	sum := Summarize(bank, log)
	assert.Equal(t, 2, sum.Score)
	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 67, sum.Percentage)
	assert.Equal(t, BandGood, sum.Band)
}

func TestSummarizeBreakdownOrder(t *testing.T) {
	bank := twoQuestionBank()
	log := []AnswerRecord{Evaluate(bank[0], 1), Evaluate(bank[1], 2)}

	sum := Summarize(bank, log)
	if assert.Len(t, sum.Breakdown, 2) {
		assert.Equal(t, 1, sum.Breakdown[0].Question.ID)
		assert.Equal(t, 1, sum.Breakdown[0].Record.QuestionID)
		assert.Equal(t, 2, sum.Breakdown[1].Question.ID)
		assert.False(t, sum.Breakdown[1].Record.IsCorrect)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil, nil)
	assert.Equal(t, 0, sum.Percentage)
	assert.Equal(t, BandNeedsWork, sum.Band)
	assert.Empty(t, sum.Breakdown)
}

func TestSummarizeIgnoresRecordsPastBank(t *testing.T) {
	bank := testBank(2)
	log := []AnswerRecord{
		Evaluate(bank[0], bank[0].CorrectOptionIndex),
		Evaluate(bank[1], bank[1].CorrectOptionIndex),
		{QuestionID: 99, SelectedOptionIndex: 0, IsCorrect: true},
	}

	sum := Summarize(bank, log)
	assert.Equal(t, 2, sum.Score)
	assert.Equal(t, 100, sum.Percentage)
	assert.Len(t, sum.Breakdown, 2)
	for i, item := range sum.Breakdown {
		assert.Equal(t, bank[i].ID, item.Question.ID)
		assert.NotEmpty(t, item.Question.Prompt)
	}
}
