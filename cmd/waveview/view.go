package main

import (
	"github.com/hazadus/go-waveview/internal/trackset"
	"github.com/hazadus/go-waveview/internal/tui"
)

// viewFiles открывает файлы и запускает интерактивный просмотр
func (app *Application) viewFiles(paths []string) error {
	set, err := trackset.New(paths, trackset.Options{
		Rate:           app.rate,
		MinZoomSamples: app.minZoomSamples,
		MaxWidthSec:    app.maxWidthSec,
	})
	if err != nil {
		return err
	}
	defer set.Close()

	return tui.NewApp(set).Run()
}
