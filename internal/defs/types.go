// internal/defs/types.go
package defs

// Question is one multiple-choice quiz entry.
type Question struct {
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	Answer      int      `json:"answer"` // index into Options
	Explanation string   `json:"explanation"`
}

// QuestionBank is an ordered list of questions.
type QuestionBank []Question

// OptionsPerQuestion is the number of choices, answered with keys 1-3.
const OptionsPerQuestion = 3
