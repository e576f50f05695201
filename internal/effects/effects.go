// Package effects содержит цепочку эффектов для предобработки сэмплов.
// Эффекты применяются к нормализованным значениям слева направо
// и не взаимодействуют с навигацией по волновой форме.
package effects

import "github.com/hazadus/go-waveview/internal/dsp"

// Effect обрабатывает один сэмпл и возвращает результат
type Effect interface {
	Process(input float32) float32
}

// Gain умножает сэмпл на постоянный коэффициент
type Gain struct {
	gain float32
}

// NewGain создает эффект усиления с заданным коэффициентом
func NewGain(gain float32) *Gain {
	return &Gain{gain: gain}
}

// SetGain изменяет коэффициент усиления
func (g *Gain) SetGain(gain float32) {
	g.gain = gain
}

// Process применяет усиление к сэмплу
func (g *Gain) Process(input float32) float32 {
	return input * g.gain
}

// Clip ограничивает сэмпл заданным диапазоном
type Clip struct {
	min float32
	max float32
}

// NewClip создает эффект ограничения с заданными пределами
func NewClip(min, max float32) *Clip {
	return &Clip{min: min, max: max}
}

// SetLimits изменяет пределы ограничения
func (c *Clip) SetLimits(min, max float32) {
	c.min = min
	c.max = max
}

// Process ограничивает сэмпл пределами эффекта
func (c *Clip) Process(input float32) float32 {
	return dsp.Clip(input, c.min, c.max)
}

// Chain - упорядоченная цепочка эффектов, применяемая слева направо
type Chain struct {
	effects []Effect
}

// Push добавляет эффект в конец цепочки
func (c *Chain) Push(effect Effect) {
	c.effects = append(c.effects, effect)
}

// Clear удаляет все эффекты из цепочки
func (c *Chain) Clear() {
	c.effects = c.effects[:0]
}

// Len возвращает число эффектов в цепочке
func (c *Chain) Len() int {
	return len(c.effects)
}

// Process прогоняет один сэмпл через всю цепочку
func (c *Chain) Process(input float32) float32 {
	for _, effect := range c.effects {
		input = effect.Process(input)
	}
	return input
}

// ProcessBuffer обрабатывает буфер сэмплов на месте
func (c *Chain) ProcessBuffer(buffer []float32) {
	for i, sample := range buffer {
		buffer[i] = c.Process(sample)
	}
}
