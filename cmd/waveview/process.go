package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-waveview/internal/dsp"
	"github.com/hazadus/go-waveview/internal/effects"
	"github.com/hazadus/go-waveview/internal/rawfile"
)

// Размер порции обработки в сэмплах
const processChunk = 65536

// createProcessCommand создает команду process с привязкой к экземпляру приложения
func (app *Application) createProcessCommand() *cobra.Command {
	var (
		gain    float64
		clipMin float64
		clipMax float64
	)

	cmd := &cobra.Command{
		Use:   "process [input] [output]",
		Short: "Apply gain/clip effects to a raw int32 file",
		Long:  `Прогоняет сэмплы через цепочку эффектов слева направо и записывает новый сырой файл.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Цепочка собирается в порядке: усиление, затем ограничение
			chain := &effects.Chain{}
			if cmd.Flags().Changed("gain") {
				chain.Push(effects.NewGain(float32(gain)))
			}
			if cmd.Flags().Changed("clip-min") || cmd.Flags().Changed("clip-max") {
				chain.Push(effects.NewClip(float32(clipMin), float32(clipMax)))
			}
			if chain.Len() == 0 {
				return fmt.Errorf("не задан ни один эффект: используйте --gain или --clip-min/--clip-max")
			}
			return processFile(args[0], args[1], chain)
		},
	}

	cmd.Flags().Float64Var(&gain, "gain", 1.0, "коэффициент усиления")
	cmd.Flags().Float64Var(&clipMin, "clip-min", -1.0, "нижний предел ограничения")
	cmd.Flags().Float64Var(&clipMax, "clip-max", 1.0, "верхний предел ограничения")

	return cmd
}

func processFile(inPath, outPath string, chain *effects.Chain) error {
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

	writer := bufio.NewWriter(out)
	samples := in.Samples()
	buf := make([]float32, processChunk)

	for start := 0; start < len(samples); start += processChunk {
		end := start + processChunk
		if end > len(samples) {
			end = len(samples)
		}

		chunk := samples[start:end]
		buf = buf[:len(chunk)]
		for i, sample := range chunk {
			buf[i] = dsp.ToFloat(sample)
		}

		chain.ProcessBuffer(buf)

		for _, value := range buf {
			if err := binary.Write(writer, binary.NativeEndian, dsp.FromFloat(value)); err != nil {
				return fmt.Errorf("ошибка записи %s: %w", outPath, err)
			}
		}
	}

	if err := writer.Flush(); err != nil {
		return err
	}

	fmt.Printf("✅ Обработано %d сэмплов: %s -> %s\n", in.LenSamples(), inPath, outPath)
	return nil
}
