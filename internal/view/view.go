// Package view реализует машину состояний видимого окна времени:
// панорамирование, масштабирование и отображение времени в диапазон сэмплов
package view

import "math"

// InitialWindowSec - начальная ширина окна в секундах
const InitialWindowSec = 2.0

// Window описывает видимый интервал времени поверх фиксированной
// длительности. Границы ширины вычисляются один раз при создании,
// все операции навигации удерживают окно в пределах [0, duration].
type Window struct {
	rate      int
	duration  float64
	minWidth  float64
	maxWidth  float64
	startTime float64
	width     float64
}

// NewWindow создает окно для записи заданной длительности.
// Частота дискретизации должна быть больше нуля; это проверяет
// вызывающая сторона при конструировании набора треков.
func NewWindow(duration float64, rate, minZoomSamples int, maxWidthSec float64) *Window {
	if duration < 0 {
		duration = 0
	}

	maxWidth := math.Min(maxWidthSec, duration)
	minWidth := math.Min(float64(minZoomSamples)/float64(rate), maxWidth)

	width := 0.0
	if maxWidth > 0 {
		width = clamp(InitialWindowSec, minWidth, maxWidth)
	}

	return &Window{
		rate:     rate,
		duration: duration,
		minWidth: minWidth,
		maxWidth: maxWidth,
		width:    width,
	}
}

// Rate возвращает частоту дискретизации
func (w *Window) Rate() int {
	return w.rate
}

// Duration возвращает полную длительность в секундах
func (w *Window) Duration() float64 {
	return w.duration
}

// StartTime возвращает начало видимого интервала в секундах
func (w *Window) StartTime() float64 {
	return w.startTime
}

// Width возвращает ширину видимого интервала в секундах
func (w *Window) Width() float64 {
	return w.width
}

// SampleRange переводит видимый интервал времени в диапазон сэмплов:
// начало округляется вниз, конец - вверх
func (w *Window) SampleRange() (start, end int) {
	startF := math.Floor(w.startTime * float64(w.rate))
	if startF < 0 {
		startF = 0
	}
	endF := math.Ceil((w.startTime + w.width) * float64(w.rate))
	return int(startF), int(endF)
}

// MaxStartTime возвращает максимально допустимое начало окна
func (w *Window) MaxStartTime() float64 {
	return math.Max(w.duration-w.width, 0)
}

// Pan сдвигает окно на долю его ширины, не меняя саму ширину.
// Начало окна ограничивается диапазоном [0, MaxStartTime].
func (w *Window) Pan(fraction float64) {
	delta := w.width * fraction
	w.startTime = clamp(w.startTime+delta, 0, w.MaxStartTime())
}

// Zoom изменяет ширину окна в factor раз, сохраняя центр.
// Ширина и начало обновляются вместе, поэтому окно никогда
// не выходит за пределы [0, duration] даже частично.
func (w *Window) Zoom(factor float64) {
	center := w.startTime + w.width/2

	minWidth := math.Min(w.minWidth, w.maxWidth)
	maxWidth := math.Max(w.maxWidth, minWidth)
	newWidth := clamp(w.width*factor, minWidth, maxWidth)

	maxStart := math.Max(w.duration-newWidth, 0)
	newStart := clamp(center-newWidth/2, 0, maxStart)

	w.width = newWidth
	w.startTime = newStart
}

// JumpStart перематывает окно в начало записи
func (w *Window) JumpStart() {
	w.startTime = 0
}

// JumpEnd перематывает окно в конец записи
func (w *Window) JumpEnd() {
	w.startTime = w.MaxStartTime()
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
