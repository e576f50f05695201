package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-waveview/internal/rawfile"
	"github.com/hazadus/go-waveview/internal/wavexport"
)

// createExportCommand создает команду export с привязкой к экземпляру приложения
func (app *Application) createExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export [input] [output.wav]",
		Short: "Export a raw int32 file as a WAV container",
		Long:  `Упаковывает сырые int32-сэмплы в моно 32-битный PCM WAV.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.exportWAV(args[0], args[1])
		},
	}
}

func (app *Application) exportWAV(inPath, outPath string) error {
	in, err := rawfile.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := wavexport.WriteWAV(out, in.Samples(), app.rate); err != nil {
		return err
	}

	fmt.Printf("✅ Экспортировано %d сэмплов в %s (%d Гц)\n", in.LenSamples(), outPath, app.rate)
	return nil
}
