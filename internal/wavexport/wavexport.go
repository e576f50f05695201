// Package wavexport упаковывает сырые int32-сэмплы в контейнер WAV
// для просмотра в сторонних редакторах
package wavexport

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Размер порции записи в сэмплах
const chunkSamples = 65536

// WriteWAV записывает сэмплы как моно 32-битный PCM WAV с заданной частотой.
// Сэмплы пишутся порциями, чтобы не дублировать в памяти весь файл.
func WriteWAV(w io.WriteSeeker, samples []int32, rate int) error {
	if rate <= 0 {
		return fmt.Errorf("некорректная частота дискретизации: %d", rate)
	}

	enc := wav.NewEncoder(w, rate, 32, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  rate,
		},
		SourceBitDepth: 32,
	}

	for start := 0; start < len(samples); start += chunkSamples {
		end := start + chunkSamples
		if end > len(samples) {
			end = len(samples)
		}

		chunk := samples[start:end]
		if cap(buf.Data) < len(chunk) {
			buf.Data = make([]int, len(chunk))
		}
		buf.Data = buf.Data[:len(chunk)]
		for i, sample := range chunk {
			buf.Data[i] = int(sample)
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("ошибка записи WAV: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("ошибка завершения WAV: %w", err)
	}
	return nil
}
