package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/hardiraiz/clone-gform-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnswerStore struct {
	err      error
	inserted []models.Answer
	calls    int
}

func (s *fakeAnswerStore) InsertAnswers(_ context.Context, _ uuid.UUID, _ int, records []models.Answer) ([]models.Answer, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	s.inserted = records
	return records, nil
}

func formWith(questions ...models.Question) *models.Form {
	return &models.Form{
		ID:            uuid.New(),
		SchemaVersion: 1,
		Questions:     questions,
	}
}

func TestSubmitRejectsMissingRequiredField(t *testing.T) {
	t.Parallel()

	store := &fakeAnswerStore{}
	service := NewSubmissionService(store)
	form := formWith(textQuestion(true))

	result, err := service.Submit(context.Background(), form, nil, uuid.New())
	require.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.Equal(t, ReasonRequiredFieldMissing, result.Reason)
	assert.Zero(t, store.calls, "rejected submissions must not reach the store")
}

func TestSubmitRejectsInvalidEmailFormat(t *testing.T) {
	t.Parallel()

	store := &fakeAnswerStore{}
	service := NewSubmissionService(store)
	q := emailQuestion(false)
	form := formWith(q)
	entries := []AnswerEntry{entry(q.ID, models.StringValue("bad"))}

	result, err := service.Submit(context.Background(), form, entries, uuid.New())
	require.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.Equal(t, ReasonInvalidEmailFormat, result.Reason)
	assert.Zero(t, store.calls)
}

func TestSubmitAcceptsOptionalEmailLeftOut(t *testing.T) {
	t.Parallel()

	store := &fakeAnswerStore{}
	service := NewSubmissionService(store)
	form := formWith(emailQuestion(false))

	result, err := service.Submit(context.Background(), form, nil, uuid.New())
	require.NoError(t, err)
	assert.True(t, result.Accepted)
	assert.Empty(t, result.Records)
	assert.Equal(t, 1, store.calls)
}

func TestSubmitRejectsDuplicatesRegardlessOfSchema(t *testing.T) {
	t.Parallel()

	q1 := uuid.New()
	entries := []AnswerEntry{
		entry(q1, models.StringValue("x")),
		entry(q1, models.StringValue("y")),
	}

	schemas := []*models.Form{
		formWith(),
		formWith(textQuestion(true)),
		formWith(emailQuestion(true), textQuestion(false)),
	}
	for _, form := range schemas {
		store := &fakeAnswerStore{}
		service := NewSubmissionService(store)

		result, err := service.Submit(context.Background(), form, entries, uuid.New())
		require.NoError(t, err)
		assert.False(t, result.Accepted)
		assert.Equal(t, ReasonDuplicateAnswer, result.Reason)
		assert.Zero(t, store.calls)
	}
}

func TestSubmitChecksRunInFixedOrder(t *testing.T) {
	t.Parallel()

	// Duplicate, missing required, and a bad email all at once: the
	// duplicate must win.
	required := textQuestion(true)
	email := emailQuestion(false)
	form := formWith(required, email)
	entries := []AnswerEntry{
		entry(email.ID, models.StringValue("nope")),
		entry(email.ID, models.StringValue("nope")),
	}

	service := NewSubmissionService(&fakeAnswerStore{})
	result, err := service.Submit(context.Background(), form, entries, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, ReasonDuplicateAnswer, result.Reason)

	// Without the duplicate, the missing required field wins over the
	// email format.
	entries = []AnswerEntry{entry(email.ID, models.StringValue("nope"))}
	result, err = service.Submit(context.Background(), form, entries, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, ReasonRequiredFieldMissing, result.Reason)
}

func TestSubmitIsIdempotent(t *testing.T) {
	t.Parallel()

	q := emailQuestion(false)
	form := formWith(q)
	entries := []AnswerEntry{entry(q.ID, models.StringValue("bad"))}
	service := NewSubmissionService(&fakeAnswerStore{})

	for i := 0; i < 5; i++ {
		result, err := service.Submit(context.Background(), form, entries, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, ReasonInvalidEmailFormat, result.Reason)
	}
}

func TestSubmitPersistsOneRecordPerEntry(t *testing.T) {
	t.Parallel()

	name := textQuestion(true)
	email := emailQuestion(false)
	form := formWith(name, email)
	form.SchemaVersion = 7
	submitter := uuid.New()

	entries := []AnswerEntry{
		entry(name.ID, models.StringValue("Hardi")),
		entry(email.ID, models.StringValue("hardi@example.com")),
	}

	store := &fakeAnswerStore{}
	service := NewSubmissionService(store)

	result, err := service.Submit(context.Background(), form, entries, submitter)
	require.NoError(t, err)
	require.True(t, result.Accepted)
	require.Len(t, result.Records, 2)

	submissionID := result.Records[0].SubmissionID
	assert.NotEqual(t, uuid.Nil, submissionID)
	for i, record := range result.Records {
		assert.Equal(t, submissionID, record.SubmissionID, "records of one submission share an id")
		assert.Equal(t, form.ID, record.FormID)
		assert.Equal(t, submitter, record.UserID)
		assert.Equal(t, 7, record.SchemaVersion)
		assert.Equal(t, entries[i].QuestionID, record.QuestionID)
	}
}

func TestSubmitSurfacesStoreFailureAsError(t *testing.T) {
	t.Parallel()

	q := textQuestion(true)
	form := formWith(q)
	entries := []AnswerEntry{entry(q.ID, models.StringValue("hello"))}

	store := &fakeAnswerStore{err: ErrSchemaChanged}
	service := NewSubmissionService(store)

	result, err := service.Submit(context.Background(), form, entries, uuid.New())
	require.ErrorIs(t, err, ErrSchemaChanged)
	assert.Nil(t, result, "store failures are not validation verdicts")
}
