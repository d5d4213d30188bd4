package ai

import "errors"

var (
	// ErrInvalidMaxAttempts is returned when maxAttempts is not positive.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrBriefRequired is returned when a draft is requested without a brief.
	ErrBriefRequired = errors.New("lesson brief required")

	// ErrEmptyDraft is returned when the model produced no usable lesson.
	ErrEmptyDraft = errors.New("model returned an empty draft")
)
