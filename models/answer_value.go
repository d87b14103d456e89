package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AnswerValue is the value half of a submitted answer. The wire format
// allows a single string (Text, Radio, Dropdown, Email), a list of strings
// (Checkbox), or null.
type AnswerValue struct {
	text  *string
	texts []string
}

func StringValue(s string) AnswerValue {
	return AnswerValue{text: &s}
}

func ListValue(ss ...string) AnswerValue {
	return AnswerValue{texts: ss}
}

// IsEmpty reports whether the value is null, an empty string, or an empty
// list. Empty values never satisfy a required question.
func (v AnswerValue) IsEmpty() bool {
	if v.text != nil {
		return *v.text == ""
	}
	return len(v.texts) == 0
}

func (v AnswerValue) IsList() bool {
	return v.text == nil && v.texts != nil
}

// String returns the single value, or "" when the value is null or a list.
func (v AnswerValue) String() string {
	if v.text == nil {
		return ""
	}
	return *v.text
}

// Strings returns the list value, or nil for single and null values.
func (v AnswerValue) Strings() []string {
	return v.texts
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.text != nil {
		return json.Marshal(*v.text)
	}
	if v.texts != nil {
		return json.Marshal(v.texts)
	}
	return []byte("null"), nil
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*v = AnswerValue{}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*v = AnswerValue{text: &s}
		return nil
	case '[':
		var ss []string
		if err := json.Unmarshal(trimmed, &ss); err != nil {
			return err
		}
		if ss == nil {
			ss = []string{}
		}
		*v = AnswerValue{texts: ss}
		return nil
	}
	return fmt.Errorf("answer value must be a string, an array of strings, or null")
}
