package usecases

import (
	"fmt"
	"os"

	"github.com/devbydaniel/minutes/internal/domain/minutes"
	"github.com/devbydaniel/minutes/internal/pdf"
)

// ExportPDF renders a record to a paginated PDF file.
type ExportPDF struct {
	FontDirs []string
}

// Execute resolves a font, renders the record in two passes, and writes
// the result to path. On any error no file is written; partial
// documents are never produced.
func (e *ExportPDF) Execute(rec *minutes.Record, path string) error {
	family, err := pdf.ResolveFont(e.FontDirs)
	if err != nil {
		return err
	}

	data, err := pdf.Render(rec, family)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
