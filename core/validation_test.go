package core

import (
	"errors"
	"math"
	"testing"
)

func TestValidateLesson(t *testing.T) {
	tests := []struct {
		name    string
		lesson  *Lesson
		wantErr error
	}{
		{
			name: "valid lesson",
			lesson: &Lesson{
				Id:       1,
				Title:    "Exploring our local ecosystem",
				Axes:     NewTagSet(3, 1, 2),
				Age:      NewRange(8, 12),
				Duration: 2.5,
			},
			wantErr: nil,
		},
		{
			name: "valid lesson with ID 0",
			lesson: &Lesson{
				Id:    0,
				Title: "Query",
			},
			wantErr: nil,
		},
		{
			name: "valid lesson with age zero",
			lesson: &Lesson{
				Title: "Nursery songs",
				Age:   NewRange(0, 3),
			},
			wantErr: nil,
		},
		{
			name:    "nil lesson",
			lesson:  nil,
			wantErr: ErrInvalidLesson,
		},
		{
			name:    "empty title",
			lesson:  &Lesson{Id: 1},
			wantErr: ErrEmptyTitle,
		},
		{
			name: "inverted age range",
			lesson: &Lesson{
				Title: "Lesson",
				Age:   NewRange(12, 8),
			},
			wantErr: ErrInvalidAgeRange,
		},
		{
			name: "negative age",
			lesson: &Lesson{
				Title: "Lesson",
				Age:   NewRange(-1, 8),
			},
			wantErr: ErrInvalidAgeRange,
		},
		{
			name: "inverted group size",
			lesson: &Lesson{
				Title:     "Lesson",
				GroupSize: NewRange(30, 10),
			},
			wantErr: ErrInvalidGroupSize,
		},
		{
			name: "negative duration",
			lesson: &Lesson{
				Title:    "Lesson",
				Duration: -1,
			},
			wantErr: ErrInvalidDuration,
		},
		{
			name: "NaN duration",
			lesson: &Lesson{
				Title:    "Lesson",
				Duration: math.NaN(),
			},
			wantErr: ErrInvalidDuration,
		},
		{
			name: "unsorted tag set",
			lesson: &Lesson{
				Title: "Lesson",
				Tools: TagSet{5, 2},
			},
			wantErr: ErrUnsortedTagSet,
		},
		{
			name: "duplicate tags",
			lesson: &Lesson{
				Title:   "Lesson",
				Virtues: TagSet{2, 2},
			},
			wantErr: ErrUnsortedTagSet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLesson(tt.lesson)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateLesson() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Errorf("ValidateLesson() error = nil, want %v", tt.wantErr)
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateLesson() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidLesson) {
				t.Errorf("ValidateLesson() error = %v, want wrapped %v", err, ErrInvalidLesson)
			}
		})
	}
}

func TestValidateWeights(t *testing.T) {
	tests := []struct {
		name    string
		weights Weights
		wantErr bool
	}{
		{"default weights", DefaultWeights(), false},
		{"all zero", Weights{}, false},
		{"unnormalized", Weights{Axes: 3, Tools: 2}, false},
		{"negative", DefaultWeights().With(DimensionAge, -0.1), true},
		{"NaN", DefaultWeights().With(DimensionDomain, math.NaN()), true},
		{"infinite", DefaultWeights().With(DimensionTools, math.Inf(1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWeights(tt.weights)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidWeights) {
					t.Errorf("ValidateWeights() error = %v, want %v", err, ErrInvalidWeights)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateWeights() error = %v, want nil", err)
			}
		})
	}
}

func TestIsValidDuration(t *testing.T) {
	tests := []struct {
		hours float64
		want  bool
	}{
		{0, true},
		{1.5, true},
		{-0.5, false},
		{math.Inf(1), false},
		{math.NaN(), false},
	}

	for _, tt := range tests {
		if got := IsValidDuration(tt.hours); got != tt.want {
			t.Errorf("IsValidDuration(%v) = %v, want %v", tt.hours, got, tt.want)
		}
	}
}
