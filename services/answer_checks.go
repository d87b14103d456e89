package services

import (
	"github.com/google/uuid"
	"github.com/hardiraiz/clone-gform-backend/models"
	"github.com/hardiraiz/clone-gform-backend/utils"
)

// AnswerEntry is one (question, value) pair of an incoming submission.
type AnswerEntry struct {
	QuestionID uuid.UUID          `json:"questionId"`
	Value      models.AnswerValue `json:"value"`
}

// HasDuplicateAnswers reports whether any question is answered more than
// once. A duplicate makes the rest of the submission ambiguous, so this
// check runs before all others.
func HasDuplicateAnswers(entries []AnswerEntry) bool {
	seen := make(map[uuid.UUID]struct{}, len(entries))
	for _, entry := range entries {
		if _, ok := seen[entry.QuestionID]; ok {
			return true
		}
		seen[entry.QuestionID] = struct{}{}
	}
	return false
}

// MissingRequiredQuestions returns every required question that has no
// answer, or whose answer is null, an empty string, or an empty list.
// Non-required questions are never reported.
func MissingRequiredQuestions(questions []models.Question, entries []AnswerEntry) []models.Question {
	var missing []models.Question
	for _, question := range questions {
		if !question.Required {
			continue
		}
		entry := findAnswer(entries, question.ID)
		if entry == nil || entry.Value.IsEmpty() {
			missing = append(missing, question)
		}
	}
	return missing
}

// InvalidEmailQuestions returns every Email-typed question whose submitted
// value fails the email grammar. An optional email left blank is skipped,
// and a question with no answer at all is never reported here; a missing
// required email belongs to MissingRequiredQuestions so the two checks do
// not overlap.
func InvalidEmailQuestions(questions []models.Question, entries []AnswerEntry) []models.Question {
	var invalid []models.Question
	for _, question := range questions {
		if question.Type != models.QuestionTypeEmail {
			continue
		}
		entry := findAnswer(entries, question.ID)
		if entry == nil {
			continue
		}
		if !question.Required && entry.Value.IsEmpty() {
			continue
		}
		if !utils.IsEmailValid(entry.Value.String()) {
			invalid = append(invalid, question)
		}
	}
	return invalid
}

// TODO: reject choice answers whose value is not in the question's option
// set once product confirms submissions should be that strict.

func findAnswer(entries []AnswerEntry, questionID uuid.UUID) *AnswerEntry {
	for i := range entries {
		if entries[i].QuestionID == questionID {
			return &entries[i]
		}
	}
	return nil
}
