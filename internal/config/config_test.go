package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultOnMissingFile(t *testing.T) {
	// Отсутствующий файл конфигурации не считается ошибкой
	loadedConfig, err := Load(filepath.Join(t.TempDir(), "no-such-config.yaml"))
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	if loadedConfig.SampleRate != DefaultSampleRate {
		t.Errorf("Ожидался SampleRate: %d, получено: %d", DefaultSampleRate, loadedConfig.SampleRate)
	}
	if loadedConfig.MinZoomSamples != DefaultMinZoomSamples {
		t.Errorf("Ожидался MinZoomSamples: %d, получено: %d", DefaultMinZoomSamples, loadedConfig.MinZoomSamples)
	}
	if loadedConfig.MaxWidthSec != DefaultMaxWidthSec {
		t.Errorf("Ожидался MaxWidthSec: %f, получено: %f", DefaultMaxWidthSec, loadedConfig.MaxWidthSec)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	// Создаем временный файл конфигурации
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	testConfig := Config{
		SampleRate:     44100,
		MinZoomSamples: 256,
		MaxWidthSec:    5.0,
	}

	data, err := yaml.Marshal(testConfig)
	if err != nil {
		t.Fatalf("Ошибка сериализации конфигурации: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	loadedConfig, err := Load(configPath)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	if loadedConfig.SampleRate != testConfig.SampleRate {
		t.Errorf("Ожидался SampleRate: %d, получено: %d", testConfig.SampleRate, loadedConfig.SampleRate)
	}
	if loadedConfig.MinZoomSamples != testConfig.MinZoomSamples {
		t.Errorf("Ожидался MinZoomSamples: %d, получено: %d", testConfig.MinZoomSamples, loadedConfig.MinZoomSamples)
	}
	if loadedConfig.MaxWidthSec != testConfig.MaxWidthSec {
		t.Errorf("Ожидался MaxWidthSec: %f, получено: %f", testConfig.MaxWidthSec, loadedConfig.MaxWidthSec)
	}
}

func TestPartialConfig(t *testing.T) {
	// Незаданные поля получают значения по умолчанию
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "partial.yaml")

	if err := os.WriteFile(configPath, []byte("sample_rate: 96000\n"), 0644); err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	loadedConfig, err := Load(configPath)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	if loadedConfig.SampleRate != 96000 {
		t.Errorf("Ожидался SampleRate: 96000, получено: %d", loadedConfig.SampleRate)
	}
	if loadedConfig.MinZoomSamples != DefaultMinZoomSamples {
		t.Errorf("Ожидался MinZoomSamples по умолчанию: %d, получено: %d",
			DefaultMinZoomSamples, loadedConfig.MinZoomSamples)
	}
}

func TestNonPositiveValues(t *testing.T) {
	// Нулевые и отрицательные значения заменяются значениями по умолчанию
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "zero.yaml")

	content := "sample_rate: 0\nmin_zoom_samples: -5\nmax_width_sec: 0\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	loadedConfig, err := Load(configPath)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	if loadedConfig.SampleRate != DefaultSampleRate {
		t.Errorf("Ожидался SampleRate по умолчанию: %d, получено: %d",
			DefaultSampleRate, loadedConfig.SampleRate)
	}
	if loadedConfig.MinZoomSamples != DefaultMinZoomSamples {
		t.Errorf("Ожидался MinZoomSamples по умолчанию: %d, получено: %d",
			DefaultMinZoomSamples, loadedConfig.MinZoomSamples)
	}
	if loadedConfig.MaxWidthSec != DefaultMaxWidthSec {
		t.Errorf("Ожидался MaxWidthSec по умолчанию: %f, получено: %f",
			DefaultMaxWidthSec, loadedConfig.MaxWidthSec)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.yaml")

	invalidYAML := "sample_rate: [unclosed array\n"
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("Ожидалась ошибка при загрузке некорректного YAML")
	}
}
