package solution

import "github.com/abhisek/mathai/internal/llm"

// SolutionSchema defines the JSON schema for LLM solution responses.
var SolutionSchema = &llm.Schema{
	Name:        "math-solution",
	Description: "A worked solution to a single math question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{
				"type":        "string",
				"description": "The final answer. Plain ASCII, simplest form: reduce fractions, no trailing zeros on decimals, no units unless the question asks for them. For multiple roots, list them ascending separated by a comma and a space.",
			},
			"steps": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Numbered solution steps, e.g. \"1. Start with ...\". Between 2 and 6 steps, each one sentence.",
			},
		},
		"required":             []any{"answer", "steps"},
		"additionalProperties": false,
	},
}
