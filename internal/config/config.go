// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Значения по умолчанию для параметров просмотра
const (
	DefaultSampleRate     = 48000
	DefaultMinZoomSamples = 100
	DefaultMaxWidthSec    = 2.0
)

// Config структура для хранения конфигурации приложения
type Config struct {
	SampleRate     int     `yaml:"sample_rate"`      // Частота дискретизации, Гц
	MinZoomSamples int     `yaml:"min_zoom_samples"` // Минимальная ширина окна в сэмплах
	MaxWidthSec    float64 `yaml:"max_width_sec"`    // Максимальная ширина окна в секундах
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		SampleRate:     DefaultSampleRate,
		MinZoomSamples: DefaultMinZoomSamples,
		MaxWidthSec:    DefaultMaxWidthSec,
	}
}

// Load загружает конфигурацию приложения из указанного файла.
// Отсутствующий файл не считается ошибкой: возвращаются значения
// по умолчанию. Нулевые и отрицательные значения также заменяются
// значениями по умолчанию.
func Load(filePath string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	path := strings.Replace(filePath, "~", home, 1)

	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	// Подставляем значения по умолчанию вместо бессмысленных
	if config.SampleRate <= 0 {
		config.SampleRate = DefaultSampleRate
	}
	if config.MinZoomSamples <= 0 {
		config.MinZoomSamples = DefaultMinZoomSamples
	}
	if config.MaxWidthSec <= 0 {
		config.MaxWidthSec = DefaultMaxWidthSec
	}

	return config, nil
}
