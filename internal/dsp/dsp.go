// Package dsp содержит чистые функции для анализа амплитуды сэмплов
package dsp

import "math"

// I32Scale - коэффициент перевода int32-сэмпла в диапазон [-1, 1]
const I32Scale = 1.0 / 2147483648.0

// ToFloat преобразует int32-сэмпл в нормализованное значение [-1, 1]
func ToFloat(sample int32) float32 {
	return float32(sample) * I32Scale
}

// FromFloat преобразует нормализованное значение обратно в int32-сэмпл.
// Значение предварительно ограничивается диапазоном [-1, 1].
func FromFloat(value float32) int32 {
	// Масштабируем в float64: множитель 2147483647 непредставим в float32,
	// и округление вверх привело бы к переполнению при конверсии
	return int32(float64(Clip(value, -1, 1)) * 2147483647.0)
}

// Clip ограничивает значение заданным диапазоном
func Clip(value, min, max float32) float32 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Peak возвращает максимальное абсолютное значение среди сэмплов.
// Для пустого среза возвращает 0.
func Peak(samples []float32) float32 {
	var peak float32
	for _, value := range samples {
		if value < 0 {
			value = -value
		}
		if value > peak {
			peak = value
		}
	}
	return peak
}

// RMS возвращает среднеквадратичное значение сэмплов.
// Для пустого среза возвращает 0.
func RMS(samples []float32) float32 {
	if len(samples) == 0 {
		return 0
	}

	var sum float64
	for _, value := range samples {
		sum += float64(value) * float64(value)
	}
	return float32(math.Sqrt(sum / float64(len(samples))))
}

// DBFS переводит амплитуду в децибелы относительно полной шкалы.
// Для нулевого значения возвращает отрицательную бесконечность.
func DBFS(value float32) float32 {
	abs := math.Abs(float64(value))
	if abs <= 0 {
		return float32(math.Inf(-1))
	}
	return float32(20 * math.Log10(abs))
}

// NormalizeToPeak масштабирует сэмплы на месте так, чтобы пик стал равен
// targetPeak, и возвращает применённый коэффициент усиления.
// Возвращает 0 без изменений, если срез пуст, targetPeak <= 0 или текущий пик <= 0.
func NormalizeToPeak(samples []float32, targetPeak float32) float32 {
	if len(samples) == 0 || targetPeak <= 0 {
		return 0
	}

	currentPeak := Peak(samples)
	if currentPeak <= 0 {
		return 0
	}

	gain := targetPeak / currentPeak
	for i := range samples {
		samples[i] *= gain
	}
	return gain
}

// WindowedRMS разбивает сэмплы на последовательные окна по window штук
// (последнее окно может быть короче) и возвращает RMS каждого окна.
// При window == 0 возвращает nil.
func WindowedRMS(samples []float32, window int) []float32 {
	return windowed(samples, window, RMS)
}

// WindowedPeak аналогичен WindowedRMS, но считает пик каждого окна
func WindowedPeak(samples []float32, window int) []float32 {
	return windowed(samples, window, Peak)
}

func windowed(samples []float32, window int, reduce func([]float32) float32) []float32 {
	if window <= 0 {
		return nil
	}

	out := make([]float32, 0, (len(samples)+window-1)/window)
	for start := 0; start < len(samples); start += window {
		end := start + window
		if end > len(samples) {
			end = len(samples)
		}
		out = append(out, reduce(samples[start:end]))
	}
	return out
}

// AutoscaleSymmetric выводит симметричные вертикальные границы отображения
// из наблюдаемых минимума и максимума. Если хотя бы одно значение не конечно,
// возвращает (-1, 1). Почти нулевой размах (тишина) поднимается до 0.01,
// иначе добавляется 5% запаса сверху.
func AutoscaleSymmetric(minY, maxY float32) (float32, float32) {
	if !isFinite(minY) || !isFinite(maxY) {
		return -1, 1
	}

	maxVal := float32(math.Max(math.Abs(float64(minY)), math.Abs(float64(maxY))))
	if maxVal < 1e-6 {
		maxVal = 0.01
	} else {
		maxVal *= 1.05
	}

	return -maxVal, maxVal
}

func isFinite(value float32) bool {
	f := float64(value)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
