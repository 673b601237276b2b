package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// UserProfile represents one analysis request: the skills and interests the
// user selected (or confirmed from a resume scan), academic scores, and
// declared personality. Created per request and discarded after.
type UserProfile struct {
	SelectedSkills    []string    `json:"selected_skills"`
	SelectedInterests []string    `json:"selected_interests"`
	MathScore         int         `json:"math_score" validate:"min=0,max=100"`
	CodeScore         int         `json:"code_score" validate:"min=0,max=100"`
	Personality       Personality `json:"personality"`
}

// Validate validates score ranges and the personality label.
func (u *UserProfile) Validate() error {
	validate := validator.New()
	if err := validate.Struct(u); err != nil {
		return err
	}
	if _, err := ParsePersonality(string(u.Personality)); err != nil {
		return fmt.Errorf("invalid user profile: %w", err)
	}
	return nil
}
