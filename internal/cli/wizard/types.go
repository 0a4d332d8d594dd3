// Package wizard asks the user for scaffold options with huh forms.
// It is the only interactive input boundary; everything it returns is
// validated again by the compatibility rules before scaffolding.
package wizard

import (
	"errors"

	"github.com/absolutejs/create-absolutejs/pkg/models"
)

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeMultiSelect picks any number of options.
	QuestionTypeMultiSelect
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm
)

// Question defines a single wizard question.
type Question struct {
	ID          string
	Type        QuestionType
	Title       string
	Description string

	// Options lists the choices of select questions. It is evaluated when
	// the question is reached, so earlier answers can narrow it.
	Options func(*models.ProjectOptions) []Option

	// Validate checks input answers; nil accepts anything.
	Validate func(string) error

	// Condition decides whether the question is asked at all.
	Condition func(*models.ProjectOptions) bool
}

// Option represents a selectable option.
type Option struct {
	Label string
	Value string
	Desc  string
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
)
