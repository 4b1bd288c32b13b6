package intent

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/poiesic/chatalogue/core"
)

// Example is one labeled training utterance.
type Example struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// exampleFile is the on-disk layout of a training set.
type exampleFile struct {
	Examples []Example `json:"examples"`
}

// LoadExamples reads a labeled training set from a JSON file.
// Every example must carry a non-empty text and a known intent label.
func LoadExamples(path string) ([]Example, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading examples file: %w", err)
	}

	var file exampleFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing examples file: %w", err)
	}
	if len(file.Examples) == 0 {
		return nil, ErrNoExamples
	}

	for i, example := range file.Examples {
		if example.Text == "" {
			return nil, fmt.Errorf("example %d: %w", i, core.ErrEmptyUtterance)
		}
		if err := core.ValidateIntent(core.Intent(example.Label)); err != nil {
			return nil, fmt.Errorf("example %d: %w", i, err)
		}
	}

	return file.Examples, nil
}
