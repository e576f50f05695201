// Package waveform сворачивает произвольные диапазоны сэмплов
// в min/max-корзины для отрисовки в фиксированном числе колонок
package waveform

import (
	"math"

	"github.com/hazadus/go-waveview/internal/dsp"
)

// MinMax описывает амплитудный размах одной корзины.
// HasData == false означает, что корзине не досталось ни одного сэмпла
// (например, за концом файла); такую колонку нужно оставить пустой,
// а не рисовать как ноль.
type MinMax struct {
	Min     float32
	Max     float32
	HasData bool
}

// RangeMinMax сводит диапазон [start, end) к паре (min, max) без разбиения
// на корзины. Конец диапазона ограничивается длиной среза.
// Возвращает ok == false, если диапазон пуст или целиком за концом среза.
func RangeMinMax(samples []int32, start, end int) (minY, maxY float32, ok bool) {
	if end > len(samples) {
		end = len(samples)
	}
	if start < 0 || start >= end {
		return 0, 0, false
	}

	minY = float32(math.Inf(1))
	maxY = float32(math.Inf(-1))

	for _, sample := range samples[start:end] {
		value := dsp.ToFloat(sample)
		if value < minY {
			minY = value
		}
		if value > maxY {
			maxY = value
		}
	}

	if !isFinite(minY) || !isFinite(maxY) {
		return 0, 0, false
	}
	return minY, maxY, true
}

// BucketMinMax разбивает диапазон [start, end) на ровно buckets смежных
// непересекающихся корзин и сводит каждую к (min, max). Границы корзины i:
// start + len*i/buckets и start + len*(i+1)/buckets с целочисленным
// делением, поэтому корзины точно покрывают диапазон без зазоров.
// При buckets == 0 возвращает nil; при пустом или полностью выходящем
// за срез диапазоне - buckets корзин без данных.
func BucketMinMax(samples []int32, start, end, buckets int) []MinMax {
	if buckets <= 0 {
		return nil
	}

	if end > len(samples) {
		end = len(samples)
	}
	if start < 0 || start >= end {
		return make([]MinMax, buckets)
	}

	length := end - start
	out := make([]MinMax, 0, buckets)

	for bucket := 0; bucket < buckets; bucket++ {
		bucketStart := start + length*bucket/buckets
		bucketEnd := start + length*(bucket+1)/buckets

		// Корзин больше, чем сэмплов: часть корзин остаётся пустой
		if bucketStart >= bucketEnd {
			out = append(out, MinMax{})
			continue
		}

		minY := float32(math.Inf(1))
		maxY := float32(math.Inf(-1))

		for _, sample := range samples[bucketStart:bucketEnd] {
			value := dsp.ToFloat(sample)
			if value < minY {
				minY = value
			}
			if value > maxY {
				maxY = value
			}
		}

		// Непустой целочисленный срез не может дать неконечную свёртку,
		// но защита сохранена
		if !isFinite(minY) || !isFinite(maxY) {
			out = append(out, MinMax{})
			continue
		}

		out = append(out, MinMax{Min: minY, Max: maxY, HasData: true})
	}

	return out
}

func isFinite(value float32) bool {
	f := float64(value)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
