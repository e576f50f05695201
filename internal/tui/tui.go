// Package tui содержит компоненты для текстового интерфейса просмотра волновых форм
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hazadus/go-waveview/internal/trackset"
	"github.com/hazadus/go-waveview/internal/tui/viewer"
)

// App представляет основное TUI приложение
type App struct {
	set *trackset.Set
}

// NewApp создает новый экземпляр TUI приложения поверх набора треков
func NewApp(set *trackset.Set) *App {
	return &App{set: set}
}

// Run запускает TUI приложение
func (tuiApp *App) Run() error {
	// Создаем модель для Bubble Tea
	model := viewer.NewModel(tuiApp.set)

	// Создаем программу Bubble Tea на альтернативном экране
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Запускаем программу
	_, err := p.Run()

	return err
}
