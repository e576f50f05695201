package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hazadus/go-waveview/internal/config"
)

const defaultConfigPath = "~/.waveview"

// Application хранит конфигурацию и параметры, общие для всех команд
type Application struct {
	Config *config.Config

	// Значения флагов; по умолчанию берутся из конфигурации
	rate           int
	minZoomSamples int
	maxWidthSec    float64
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load(defaultConfigPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	app := &Application{Config: cfg}

	if err := app.createRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
