package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/hardiraiz/clone-gform-backend/models"
)

// RejectionReason identifies why a submission failed validation. The caller
// may correct the answer set and resubmit.
type RejectionReason string

const (
	ReasonDuplicateAnswer      RejectionReason = "DUPLICATE_ANSWER"
	ReasonRequiredFieldMissing RejectionReason = "REQUIRED_FIELD_MISSING"
	ReasonInvalidEmailFormat   RejectionReason = "INVALID_EMAIL_FORMAT"
)

// AnswerStore persists an accepted submission. All records are written
// atomically; schemaVersion is the form's version at fetch time and the
// store must refuse the write when it no longer matches.
type AnswerStore interface {
	InsertAnswers(ctx context.Context, formID uuid.UUID, schemaVersion int, records []models.Answer) ([]models.Answer, error)
}

type SubmitResult struct {
	Accepted bool
	Reason   RejectionReason
	Records  []models.Answer
}

// SubmissionService validates an answer set against a form's question
// schema and hands accepted sets to the store. Validation is pure; two
// calls with the same inputs always yield the same verdict.
type SubmissionService struct {
	store AnswerStore
}

func NewSubmissionService(store AnswerStore) *SubmissionService {
	return &SubmissionService{store: store}
}

// Validate runs the checks in order, stopping at the first failure:
// duplicates, then missing required fields, then email format.
func (s *SubmissionService) Validate(form *models.Form, entries []AnswerEntry) (RejectionReason, bool) {
	if HasDuplicateAnswers(entries) {
		return ReasonDuplicateAnswer, false
	}
	if len(MissingRequiredQuestions(form.Questions, entries)) > 0 {
		return ReasonRequiredFieldMissing, false
	}
	if len(InvalidEmailQuestions(form.Questions, entries)) > 0 {
		return ReasonInvalidEmailFormat, false
	}
	return "", true
}

// Submit validates the answer set and, when it passes, persists one record
// per entry under a fresh submission id. A validation failure comes back in
// the result with a nil error; a store failure comes back as the error.
func (s *SubmissionService) Submit(ctx context.Context, form *models.Form, entries []AnswerEntry, submitterID uuid.UUID) (*SubmitResult, error) {
	if reason, ok := s.Validate(form, entries); !ok {
		return &SubmitResult{Accepted: false, Reason: reason}, nil
	}

	submissionID := uuid.New()
	records := make([]models.Answer, 0, len(entries))
	for _, entry := range entries {
		records = append(records, models.Answer{
			SubmissionID:  submissionID,
			FormID:        form.ID,
			QuestionID:    entry.QuestionID,
			UserID:        submitterID,
			SchemaVersion: form.SchemaVersion,
			Value:         entry.Value,
		})
	}

	saved, err := s.store.InsertAnswers(ctx, form.ID, form.SchemaVersion, records)
	if err != nil {
		return nil, err
	}
	return &SubmitResult{Accepted: true, Records: saved}, nil
}
