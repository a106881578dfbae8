package app

import (
	"github.com/devbydaniel/minutes/config"
	"github.com/devbydaniel/minutes/internal/domain/minutes/usecases"
)

type App struct {
	Create *usecases.CreateRecord
	Open   *usecases.OpenRecord
	Save   *usecases.SaveRecord
	Export *usecases.ExportPDF
}

func New(cfg *config.Config) *App {
	return &App{
		Create: &usecases.CreateRecord{
			AuthorName: cfg.AuthorName,
			AuthorCode: cfg.AuthorCode,
		},
		Open: &usecases.OpenRecord{},
		Save: &usecases.SaveRecord{},
		Export: &usecases.ExportPDF{
			FontDirs: cfg.FontDirs,
		},
	}
}
