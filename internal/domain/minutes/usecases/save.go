package usecases

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/devbydaniel/minutes/internal/domain/minutes"
)

// stampFormat is the layout of the created/modified timestamps.
const stampFormat = "02.01.2006 15:04"

// SaveRecord normalizes and writes a record back to disk.
type SaveRecord struct{}

// Execute sorts the people lists, stamps the traceability metadata, and
// writes the serialized record to path. A record without a recorder
// name is rejected.
func (s *SaveRecord) Execute(rec *minutes.Record, path string) error {
	if strings.TrimSpace(rec.Recorder.Name) == "" {
		return fmt.Errorf("recorder name is required before saving")
	}

	rec.SortPeople()

	now := time.Now().Format(stampFormat)
	if rec.CreatedAt == "" {
		rec.CreatedAt = now
		rec.CreatedBy = rec.Recorder.Name
	}
	rec.ModifiedAt = now
	rec.ModifiedBy = rec.Recorder.Name

	if err := os.WriteFile(path, []byte(minutes.Serialize(rec)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
