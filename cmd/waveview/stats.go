package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-waveview/internal/dsp"
	"github.com/hazadus/go-waveview/internal/rawfile"
	"github.com/hazadus/go-waveview/internal/utils"
)

// createStatsCommand создает команду stats с привязкой к экземпляру приложения
func (app *Application) createStatsCommand() *cobra.Command {
	var window int

	cmd := &cobra.Command{
		Use:   "stats [raw file...]",
		Short: "Print amplitude statistics for raw int32 files",
		Long:  `Вывод пиковой амплитуды, RMS и уровней dBFS для каждого файла.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.printStats(args, window)
		},
	}

	cmd.Flags().IntVar(&window, "window", 0, "размер окна в сэмплах для оконной статистики (0 - отключено)")

	return cmd
}

func (app *Application) printStats(paths []string, window int) error {
	for _, path := range paths {
		file, err := rawfile.Open(path)
		if err != nil {
			return err
		}

		// Преобразуем сэмплы в нормализованные значения
		samples := file.Samples()
		values := make([]float32, len(samples))
		for i, sample := range samples {
			values[i] = dsp.ToFloat(sample)
		}

		peak := dsp.Peak(values)
		rms := dsp.RMS(values)
		duration := time.Duration(file.DurationSec(app.rate) * float64(time.Second))

		fmt.Printf("%s\n", file.Name())
		fmt.Printf("  Сэмплов: %d (%s при %d Гц)\n", file.LenSamples(), utils.FormatDuration(duration), app.rate)
		fmt.Printf("  Пик: %.6f (%.2f dBFS)\n", peak, dsp.DBFS(peak))
		fmt.Printf("  RMS: %.6f (%.2f dBFS)\n", rms, dsp.DBFS(rms))

		if window > 0 {
			windowPeaks := dsp.WindowedPeak(values, window)
			windowRMS := dsp.WindowedRMS(values, window)
			fmt.Printf("  Окон по %d сэмплов: %d\n", window, len(windowPeaks))
			fmt.Printf("  Максимальный пик окна: %.6f, максимальный RMS окна: %.6f\n",
				dsp.Peak(windowPeaks), dsp.Peak(windowRMS))
		}

		fmt.Println()
		file.Close()
	}

	return nil
}
