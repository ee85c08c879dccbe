package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		input string
		want  Answer
		ok    bool
	}{
		{"yes", AnswerYes, true},
		{" Y ", AnswerYes, true},
		{"true", AnswerYes, true},
		{"1", AnswerYes, true},
		{"no", AnswerNo, true},
		{"N", AnswerNo, true},
		{"false", AnswerNo, true},
		{"0", AnswerNo, true},
		{"maybe", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseAnswer(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnswerFromBool(t *testing.T) {
	assert.Equal(t, AnswerYes, AnswerFromBool(true))
	assert.Equal(t, AnswerNo, AnswerFromBool(false))
}

func TestAnswer_IsValid(t *testing.T) {
	assert.True(t, AnswerYes.IsValid())
	assert.True(t, AnswerNo.IsValid())
	assert.False(t, Answer("meh").IsValid())
	assert.False(t, Answer("").IsValid())
}
