// Package trackset объединяет несколько треков под одним общим окном
// просмотра и считает видимые корзины и амплитудный размах по всем трекам
package trackset

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/hazadus/go-waveview/internal/rawfile"
	"github.com/hazadus/go-waveview/internal/view"
	"github.com/hazadus/go-waveview/internal/waveform"
)

var (
	// ErrInvalidRate возвращается при нулевой или отрицательной частоте
	ErrInvalidRate = errors.New("частота дискретизации должна быть больше нуля")
	// ErrNoTracks возвращается, если не удалось открыть ни один файл
	ErrNoTracks = errors.New("нет ни одного читаемого файла с сэмплами")
)

// Options - параметры конструирования набора треков
type Options struct {
	Rate           int     // Частота дискретизации, Гц
	MinZoomSamples int     // Нижняя граница ширины окна в сэмплах
	MaxWidthSec    float64 // Верхняя граница ширины окна в секундах
}

// Set - упорядоченный набор треков с общим окном просмотра.
// Порядок треков соответствует порядку входных файлов и определяет
// назначение цветов в отрисовке.
type Set struct {
	tracks []*rawfile.File
	window *view.Window
	rate   int
}

// New открывает перечисленные файлы и строит общее окно просмотра.
// Файлы, которые не удалось открыть, пропускаются с предупреждением;
// если не открылся ни один - конструирование завершается ошибкой.
func New(paths []string, opts Options) (*Set, error) {
	if opts.Rate <= 0 {
		return nil, ErrInvalidRate
	}

	var tracks []*rawfile.File
	maxSamples := 0

	for _, path := range paths {
		track, err := rawfile.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Пропускаем %s: %v\n", path, err)
			continue
		}
		if track.LenSamples() > maxSamples {
			maxSamples = track.LenSamples()
		}
		tracks = append(tracks, track)
	}

	if len(tracks) == 0 {
		return nil, ErrNoTracks
	}

	// Длительность набора определяется самым длинным треком
	duration := float64(maxSamples) / float64(opts.Rate)
	window := view.NewWindow(duration, opts.Rate, opts.MinZoomSamples, opts.MaxWidthSec)

	return &Set{
		tracks: tracks,
		window: window,
		rate:   opts.Rate,
	}, nil
}

// Tracks возвращает треки набора в исходном порядке
func (s *Set) Tracks() []*rawfile.File {
	return s.tracks
}

// Len возвращает число треков в наборе
func (s *Set) Len() int {
	return len(s.tracks)
}

// Window возвращает общее окно просмотра; его пять операций навигации -
// единственный способ изменить состояние просмотра
func (s *Set) Window() *view.Window {
	return s.window
}

// Rate возвращает общую частоту дискретизации
func (s *Set) Rate() int {
	return s.rate
}

// VisibleAmplitudeRange сканирует видимый диапазон каждого трека и сводит
// результаты в общий (min, max). Треки без видимых данных пропускаются.
// Если данных нет ни у одного трека, возвращаются бесконечности, которые
// dsp.AutoscaleSymmetric превращает в границы (-1, 1).
func (s *Set) VisibleAmplitudeRange() (float32, float32) {
	start, end := s.window.SampleRange()

	minY := float32(math.Inf(1))
	maxY := float32(math.Inf(-1))

	for _, track := range s.tracks {
		localMin, localMax, ok := waveform.RangeMinMax(track.Samples(), start, end)
		if !ok {
			continue
		}
		if localMin < minY {
			minY = localMin
		}
		if localMax > maxY {
			maxY = localMax
		}
	}

	return minY, maxY
}

// VisibleBuckets возвращает строку корзин для трека с индексом index:
// по одной корзине на колонку отображения. Трек короче текущей позиции
// окна дает строку целиком без данных.
func (s *Set) VisibleBuckets(index, columns int) []waveform.MinMax {
	track := s.tracks[index]
	start, end := s.window.SampleRange()
	return waveform.BucketMinMax(track.Samples(), start, end, columns)
}

// Close освобождает отображения всех треков
func (s *Set) Close() error {
	var firstErr error
	for _, track := range s.tracks {
		if err := track.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
