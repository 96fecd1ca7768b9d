package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/mangaread/pkg/app/screens"
	"github.com/kerbaras/mangaread/pkg/config"
	"github.com/kerbaras/mangaread/pkg/services"
	"github.com/kerbaras/mangaread/pkg/sources"
	"github.com/rs/zerolog"
)

type App struct {
	controller *services.MangaController
	options    screens.Options
}

func NewApp(cfg *config.Config, log zerolog.Logger) *App {
	source := sources.NewMangaDex(cfg, nil)
	return &App{
		controller: services.NewMangaController(source, log),
		options:    screens.Options{DataSaver: cfg.DataSaver},
	}
}

// Model is the root bubbletea model, exposed for tests and embedding.
func (a *App) Model() tea.Model {
	return screens.NewRootScreen(a.controller, a.options)
}

func (a *App) Run() error {
	p := tea.NewProgram(a.Model(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
