package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/hardiraiz/clone-gform-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textQuestion(required bool) models.Question {
	return models.Question{ID: uuid.New(), Type: models.QuestionTypeText, Required: required}
}

func emailQuestion(required bool) models.Question {
	return models.Question{ID: uuid.New(), Type: models.QuestionTypeEmail, Required: required}
}

func entry(questionID uuid.UUID, value models.AnswerValue) AnswerEntry {
	return AnswerEntry{QuestionID: questionID, Value: value}
}

func TestHasDuplicateAnswers(t *testing.T) {
	t.Parallel()

	q1 := uuid.New()
	q2 := uuid.New()
	q3 := uuid.New()

	tests := []struct {
		name    string
		entries []AnswerEntry
		want    bool
	}{
		{"empty set", nil, false},
		{"single answer", []AnswerEntry{entry(q1, models.StringValue("x"))}, false},
		{
			"all distinct",
			[]AnswerEntry{
				entry(q1, models.StringValue("x")),
				entry(q2, models.StringValue("y")),
				entry(q3, models.StringValue("z")),
			},
			false,
		},
		{
			"repeat at the front",
			[]AnswerEntry{
				entry(q1, models.StringValue("x")),
				entry(q1, models.StringValue("y")),
				entry(q2, models.StringValue("z")),
			},
			true,
		},
		{
			"repeat at the back",
			[]AnswerEntry{
				entry(q1, models.StringValue("x")),
				entry(q2, models.StringValue("y")),
				entry(q2, models.StringValue("z")),
			},
			true,
		},
		{
			"same question with different values is still a repeat",
			[]AnswerEntry{
				entry(q1, models.StringValue("x")),
				entry(q1, models.StringValue("x")),
			},
			true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, HasDuplicateAnswers(tt.entries))
		})
	}
}

func TestMissingRequiredQuestions(t *testing.T) {
	t.Parallel()

	t.Run("absent answer is reported", func(t *testing.T) {
		t.Parallel()
		q := textQuestion(true)
		missing := MissingRequiredQuestions([]models.Question{q}, nil)
		require.Len(t, missing, 1)
		assert.Equal(t, q.ID, missing[0].ID)
	})

	t.Run("null value is reported", func(t *testing.T) {
		t.Parallel()
		q := textQuestion(true)
		missing := MissingRequiredQuestions([]models.Question{q}, []AnswerEntry{entry(q.ID, models.AnswerValue{})})
		assert.Len(t, missing, 1)
	})

	t.Run("empty string is reported", func(t *testing.T) {
		t.Parallel()
		q := textQuestion(true)
		missing := MissingRequiredQuestions([]models.Question{q}, []AnswerEntry{entry(q.ID, models.StringValue(""))})
		assert.Len(t, missing, 1)
	})

	t.Run("empty list is reported", func(t *testing.T) {
		t.Parallel()
		q := models.Question{ID: uuid.New(), Type: models.QuestionTypeCheckbox, Required: true}
		missing := MissingRequiredQuestions([]models.Question{q}, []AnswerEntry{entry(q.ID, models.ListValue())})
		assert.Len(t, missing, 1)
	})

	t.Run("non-empty answer passes", func(t *testing.T) {
		t.Parallel()
		q := textQuestion(true)
		missing := MissingRequiredQuestions([]models.Question{q}, []AnswerEntry{entry(q.ID, models.StringValue("hi"))})
		assert.Empty(t, missing)
	})

	t.Run("optional question is never reported", func(t *testing.T) {
		t.Parallel()
		q := textQuestion(false)
		missing := MissingRequiredQuestions([]models.Question{q}, nil)
		assert.Empty(t, missing)
	})

	t.Run("only the missing ones are reported", func(t *testing.T) {
		t.Parallel()
		answered := textQuestion(true)
		unanswered := textQuestion(true)
		missing := MissingRequiredQuestions(
			[]models.Question{answered, unanswered},
			[]AnswerEntry{entry(answered.ID, models.StringValue("ok"))},
		)
		require.Len(t, missing, 1)
		assert.Equal(t, unanswered.ID, missing[0].ID)
	})
}

func TestInvalidEmailQuestions(t *testing.T) {
	t.Parallel()

	t.Run("optional email with no answer is skipped", func(t *testing.T) {
		t.Parallel()
		q := emailQuestion(false)
		assert.Empty(t, InvalidEmailQuestions([]models.Question{q}, nil))
	})

	t.Run("optional email left blank is skipped", func(t *testing.T) {
		t.Parallel()
		q := emailQuestion(false)
		entries := []AnswerEntry{entry(q.ID, models.StringValue(""))}
		assert.Empty(t, InvalidEmailQuestions([]models.Question{q}, entries))
	})

	t.Run("malformed value is reported", func(t *testing.T) {
		t.Parallel()
		q := emailQuestion(false)
		entries := []AnswerEntry{entry(q.ID, models.StringValue("not-an-email"))}
		invalid := InvalidEmailQuestions([]models.Question{q}, entries)
		require.Len(t, invalid, 1)
		assert.Equal(t, q.ID, invalid[0].ID)
	})

	t.Run("well-formed value passes", func(t *testing.T) {
		t.Parallel()
		q := emailQuestion(false)
		entries := []AnswerEntry{entry(q.ID, models.StringValue("a@b.co"))}
		assert.Empty(t, InvalidEmailQuestions([]models.Question{q}, entries))
	})

	t.Run("required email with no answer belongs to the required check", func(t *testing.T) {
		t.Parallel()
		q := emailQuestion(true)
		assert.Empty(t, InvalidEmailQuestions([]models.Question{q}, nil))
		assert.Len(t, MissingRequiredQuestions([]models.Question{q}, nil), 1)
	})

	t.Run("required email left blank is reported here too", func(t *testing.T) {
		t.Parallel()
		q := emailQuestion(true)
		entries := []AnswerEntry{entry(q.ID, models.StringValue(""))}
		assert.Len(t, InvalidEmailQuestions([]models.Question{q}, entries), 1)
	})

	t.Run("non-email questions are ignored", func(t *testing.T) {
		t.Parallel()
		q := textQuestion(true)
		entries := []AnswerEntry{entry(q.ID, models.StringValue("not-an-email"))}
		assert.Empty(t, InvalidEmailQuestions([]models.Question{q}, entries))
	})
}
