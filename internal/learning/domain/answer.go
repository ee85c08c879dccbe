// Package domain holds the feedback learning model: per-task and per-project
// yes/no tallies and the storage port they are kept behind.
package domain

import (
	"errors"
	"strings"
)

// Answer is a single "did this move the needle?" outcome.
type Answer string

const (
	AnswerYes Answer = "yes"
	AnswerNo  Answer = "no"
)

// ErrInvalidAnswer is returned when an outcome cannot be parsed.
var ErrInvalidAnswer = errors.New("answer must be yes or no")

// ParseAnswer converts user input into an Answer.
// It accepts yes/no, y/n, true/false and 1/0 in any case.
func ParseAnswer(s string) (Answer, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1":
		return AnswerYes, true
	case "no", "n", "false", "0":
		return AnswerNo, true
	default:
		return "", false
	}
}

// AnswerFromBool maps a boolean outcome to an Answer.
func AnswerFromBool(v bool) Answer {
	if v {
		return AnswerYes
	}
	return AnswerNo
}

// IsValid reports whether the answer is yes or no.
func (a Answer) IsValid() bool {
	return a == AnswerYes || a == AnswerNo
}

// String returns the string representation of the answer.
func (a Answer) String() string {
	return string(a)
}
