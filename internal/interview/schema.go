package interview

import "github.com/rsharan/talentscout/internal/llm"

// QuestionSetSchema constrains structured-output backends to a mapping
// from technology name to exactly 3 question strings. Technology names
// are candidate-declared free text, so the object is open-keyed.
var QuestionSetSchema = &llm.Schema{
	Name:        "question-set",
	Description: "Interview questions grouped by technology, exactly 3 per technology",
	Definition: map[string]any{
		"type": "object",
		"additionalProperties": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string"},
			"minItems": QuestionsPerTechnology,
			"maxItems": QuestionsPerTechnology,
		},
	},
}

// SkillEstimateSchema constrains structured-output backends to a
// mapping from technology name to one of the three fixed labels.
var SkillEstimateSchema = &llm.Schema{
	Name:        "skill-estimate",
	Description: "Estimated skill level per technology",
	Definition: map[string]any{
		"type": "object",
		"additionalProperties": map[string]any{
			"type": "string",
			"enum": []any{string(Beginner), string(Intermediate), string(Expert)},
		},
	},
}
