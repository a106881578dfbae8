package usecases

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/devbydaniel/minutes/internal/domain/minutes"
)

// CreateRecord scaffolds a new record file.
type CreateRecord struct {
	AuthorName string
	AuthorCode string
}

// Execute creates a fresh record for today and writes it to path. An
// existing file is never overwritten.
func (c *CreateRecord) Execute(title, path string) (*minutes.Record, error) {
	rec := minutes.NewRecord(time.Now())
	rec.Title = title
	rec.Recorder.SetName(c.AuthorName)
	if c.AuthorCode != "" {
		rec.Recorder.SetCode(c.AuthorCode)
	}

	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("%s already exists", path)
	}
	if err := os.WriteFile(path, []byte(minutes.Serialize(rec)), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	return rec, nil
}

// SuggestedFileName builds the default markdown file name for a title:
// the title's letters plus today's date.
func SuggestedFileName(title string, now time.Time) string {
	return fmt.Sprintf("Minutes_%s__%s.md", lettersOf(title), now.Format("2006-01-02"))
}

// SuggestedPDFName builds the default export file name for a title.
func SuggestedPDFName(title string, now time.Time) string {
	return fmt.Sprintf("Minutes_%s__%s.pdf", lettersOf(title), now.Format("2006-01-02"))
}

func lettersOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
