package main

import "github.com/spf13/cobra"

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "waveview [raw file...]",
		Short: "Terminal waveform viewer for raw int32 audio",
		Long:  `Просмотр сырых int32 PCM файлов как волновых форм прямо в терминале.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.viewFiles(args)
		},
	}

	// Общие флаги просмотра; значения по умолчанию берутся из конфигурации
	rootCmd.PersistentFlags().IntVar(&app.rate, "rate", app.Config.SampleRate,
		"частота дискретизации, Гц")
	rootCmd.PersistentFlags().IntVar(&app.minZoomSamples, "min-zoom-samples", app.Config.MinZoomSamples,
		"минимальная ширина окна в сэмплах")
	rootCmd.PersistentFlags().Float64Var(&app.maxWidthSec, "max-width-sec", app.Config.MaxWidthSec,
		"максимальная ширина окна в секундах")

	// Добавляем команды, передавая в них экземпляр приложения
	rootCmd.AddCommand(app.createStatsCommand())
	rootCmd.AddCommand(app.createProcessCommand())
	rootCmd.AddCommand(app.createExportCommand())

	return rootCmd
}
