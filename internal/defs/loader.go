// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

//go:embed data/questions.json
var defaultQuestions []byte

// DefaultQuestionBank returns the built-in questions.
func DefaultQuestionBank() (QuestionBank, error) {
	bank, err := ParseQuestionBank(defaultQuestions)
	if err != nil {
		return nil, fmt.Errorf("built-in question bank: %w", err)
	}
	return bank, nil
}

// LoadQuestionBank reads a question file. An empty path selects the
// built-in bank.
func LoadQuestionBank(path string) (QuestionBank, error) {
	if path == "" {
		return DefaultQuestionBank()
	}
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question file: %w", err)
	}
	bank, err := ParseQuestionBank(file)
	if err != nil {
		return nil, fmt.Errorf("question file %s: %w", path, err)
	}
	return bank, nil
}

// ParseQuestionBank decodes and validates JSON question data.
func ParseQuestionBank(data []byte) (QuestionBank, error) {
	var bank QuestionBank
	if err := json.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions: %w", err)
	}
	if err := bank.Validate(); err != nil {
		return nil, err
	}
	return bank, nil
}

// Validate reports the first malformed question.
func (b QuestionBank) Validate() error {
	if len(b) == 0 {
		return errors.New("question bank is empty")
	}
	for i, q := range b {
		switch {
		case q.Prompt == "":
			return fmt.Errorf("question %d: empty prompt", i+1)
		case len(q.Options) != OptionsPerQuestion:
			return fmt.Errorf("question %d: %d options, want %d", i+1, len(q.Options), OptionsPerQuestion)
		case q.Answer < 0 || q.Answer >= len(q.Options):
			return fmt.Errorf("question %d: answer index %d out of range", i+1, q.Answer)
		}
	}
	return nil
}
