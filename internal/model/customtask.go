package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidCategory = errors.New("model: invalid category")

type Category string

const (
	CategoryGeneral    Category = "General"
	CategoryAssignment Category = "Assignment"
	CategoryProject    Category = "Project"
	CategoryExamPrep   Category = "Exam Prep"
	CategoryReading    Category = "Reading"
	CategoryOther      Category = "Other"
)

// Categories lists the allowed custom task categories in display order.
func Categories() []Category {
	return []Category{
		CategoryGeneral,
		CategoryAssignment,
		CategoryProject,
		CategoryExamPrep,
		CategoryReading,
		CategoryOther,
	}
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryGeneral, CategoryAssignment, CategoryProject, CategoryExamPrep, CategoryReading, CategoryOther:
		return true
	default:
		return false
	}
}

// CustomTask is a user-added task scoped to a single date. Unlike schedule
// tasks it has no time range; completion still flows through the habit set.
type CustomTask struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
}

func (t CustomTask) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: custom task id is required")
	}
	if strings.TrimSpace(t.Description) == "" {
		return errors.New("model: custom task description is required")
	}
	if !t.Category.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, t.Category)
	}
	return nil
}
