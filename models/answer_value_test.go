package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerValueUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("string", func(t *testing.T) {
		t.Parallel()
		var v AnswerValue
		require.NoError(t, json.Unmarshal([]byte(`"hello"`), &v))
		assert.False(t, v.IsList())
		assert.Equal(t, "hello", v.String())
		assert.False(t, v.IsEmpty())
	})

	t.Run("list", func(t *testing.T) {
		t.Parallel()
		var v AnswerValue
		require.NoError(t, json.Unmarshal([]byte(`["a","b"]`), &v))
		assert.True(t, v.IsList())
		assert.Equal(t, []string{"a", "b"}, v.Strings())
		assert.Equal(t, "", v.String())
	})

	t.Run("null", func(t *testing.T) {
		t.Parallel()
		var v AnswerValue
		require.NoError(t, json.Unmarshal([]byte(`null`), &v))
		assert.True(t, v.IsEmpty())
		assert.False(t, v.IsList())
	})

	t.Run("anything else is refused", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{`42`, `true`, `{"a":1}`, `[1,2]`} {
			var v AnswerValue
			assert.Error(t, json.Unmarshal([]byte(raw), &v), raw)
		}
	})
}

func TestAnswerValueMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		raw  string
	}{
		{"string", `"hello"`},
		{"empty string", `""`},
		{"list", `["a","b"]`},
		{"empty list", `[]`},
		{"null", `null`},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var v AnswerValue
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &v))
			out, err := json.Marshal(v)
			require.NoError(t, err)
			assert.JSONEq(t, tt.raw, string(out))
		})
	}
}

func TestAnswerValueIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, AnswerValue{}.IsEmpty())
	assert.True(t, StringValue("").IsEmpty())
	assert.True(t, ListValue().IsEmpty())
	assert.False(t, StringValue("x").IsEmpty())
	assert.False(t, ListValue("x").IsEmpty())
}

func TestQuestionTypeHasOptions(t *testing.T) {
	t.Parallel()

	assert.True(t, QuestionTypeRadio.HasOptions())
	assert.True(t, QuestionTypeCheckbox.HasOptions())
	assert.True(t, QuestionTypeDropdown.HasOptions())
	assert.False(t, QuestionTypeText.HasOptions())
	assert.False(t, QuestionTypeEmail.HasOptions())
	assert.False(t, QuestionType("Nope").Valid())
	for _, qt := range AllowedQuestionTypes {
		assert.True(t, qt.Valid())
	}
}
