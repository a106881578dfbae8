package usecases

import (
	"fmt"
	"os"

	"github.com/devbydaniel/minutes/internal/domain/minutes"
)

// OpenRecord loads a record from a markdown file.
type OpenRecord struct{}

// Execute reads and parses the file at path. Parse failures surface
// verbatim with the file name prepended; a failed parse never yields a
// partial record.
func (o *OpenRecord) Execute(path string) (*minutes.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	rec, err := minutes.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}
