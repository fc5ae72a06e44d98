package interview

import (
	"fmt"
	"strings"
)

// QuestionsPerTechnology is the fixed number of questions requested for
// each declared technology.
const QuestionsPerTechnology = 3

// SkillLevel is one of the three fixed proficiency tiers.
type SkillLevel string

const (
	Beginner     SkillLevel = "Beginner"
	Intermediate SkillLevel = "Intermediate"
	Expert       SkillLevel = "Expert"
)

// Valid reports whether the level is one of the three known labels.
func (l SkillLevel) Valid() bool {
	switch l {
	case Beginner, Intermediate, Expert:
		return true
	}
	return false
}

// QuestionSet maps a technology name to its generated questions.
// Derived from model output, never hand-edited.
type QuestionSet map[string][]string

// Validate checks the shape contract: every technology carries exactly
// QuestionsPerTechnology non-empty question strings.
func (qs QuestionSet) Validate() error {
	if len(qs) == 0 {
		return fmt.Errorf("question set is empty")
	}
	for tech, questions := range qs {
		if len(questions) != QuestionsPerTechnology {
			return fmt.Errorf("technology %q has %d questions, want %d", tech, len(questions), QuestionsPerTechnology)
		}
		for i, q := range questions {
			if strings.TrimSpace(q) == "" {
				return fmt.Errorf("technology %q question %d is empty", tech, i+1)
			}
		}
	}
	return nil
}

// SkillEstimate maps a technology name to an estimated skill level.
// Derived from model output, never hand-edited.
type SkillEstimate map[string]SkillLevel

// Validate checks that every value is one of the three fixed labels.
func (e SkillEstimate) Validate() error {
	if len(e) == 0 {
		return fmt.Errorf("skill estimate is empty")
	}
	for tech, level := range e {
		if !level.Valid() {
			return fmt.Errorf("technology %q has unknown skill label %q", tech, level)
		}
	}
	return nil
}

// SplitTechStack splits the candidate's free-text tech stack on commas,
// trimming whitespace and dropping empty entries. The input is
// unvalidated free text; whatever survives the split is a technology.
func SplitTechStack(stack string) []string {
	parts := strings.Split(stack, ",")
	techs := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			techs = append(techs, t)
		}
	}
	return techs
}
