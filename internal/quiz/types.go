package quiz

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// NoSelection marks the absence of a selected option.
const NoSelection = -1

// Question is a single multiple-choice question. Questions are immutable once
// loaded into a bank.
type Question struct {
	// ID is unique within one language's bank.
	ID int `json:"id"`

	// Category names the chapter the question belongs to.
	Category string `json:"category"`

	Prompt string `json:"prompt"`

	// Options holds exactly OptionCount answers in display order.
	Options []string `json:"options"`

	// CorrectOptionIndex is the index into Options of the right answer.
	CorrectOptionIndex int `json:"correctOptionIndex"`

	// Explanation is shown once the learner has confirmed an answer.
	Explanation string `json:"explanation"`
}

// CorrectOption returns the text of the correct answer.
func (q Question) CorrectOption() string {
	return q.Option(q.CorrectOptionIndex)
}

// Option returns the text of option i, or "" when i is out of range.
func (q Question) Option(i int) string {
	if i < 0 || i >= len(q.Options) {
		return ""
	}
	return q.Options[i]
}

// AnswerRecord is the log entry produced once per answered question.
type AnswerRecord struct {
	QuestionID          int  `json:"questionId"`
	SelectedOptionIndex int  `json:"selectedOptionIndex"`
	CorrectOptionIndex  int  `json:"correctOptionIndex"`
	IsCorrect           bool `json:"isCorrect"`
}

// Evaluate compares selected against the question's correct option.
func Evaluate(q Question, selected int) AnswerRecord {
	return AnswerRecord{
		QuestionID:          q.ID,
		SelectedOptionIndex: selected,
		CorrectOptionIndex:  q.CorrectOptionIndex,
		IsCorrect:           selected == q.CorrectOptionIndex,
	}
}
