// Package rawfile открывает сырые файлы int32-сэмплов через mmap,
// предоставляя доступ к данным без копирования
package rawfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/unix"
)

// BytesPerSample - ширина одного сэмпла в байтах
const BytesPerSample = 4

var (
	// ErrMisaligned возвращается, если размер файла не кратен ширине сэмпла
	ErrMisaligned = errors.New("размер файла не кратен 4 байтам")
	// ErrEmpty возвращается для файла без единого сэмпла
	ErrEmpty = errors.New("файл пуст")
)

// File - неизменяемый трек: отображённый в память файл сырых int32-сэмплов.
// File единолично владеет отображением; оно действительно до вызова Close.
type File struct {
	path    string
	name    string
	mapping []byte
	samples []int32
}

// Open отображает файл в память только для чтения и проверяет,
// что его размер кратен ширине сэмпла и файл не пуст
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size := info.Size()
	if size%BytesPerSample != 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrMisaligned)
	}
	if size == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}

	mapping, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("ошибка отображения файла %s: %w", path, err)
	}

	count := int(size) / BytesPerSample
	// Интерпретируем отображённые байты как сэмплы в порядке байт платформы
	samples := unsafe.Slice((*int32)(unsafe.Pointer(&mapping[0])), count)

	return &File{
		path:    path,
		name:    filepath.Base(path),
		mapping: mapping,
		samples: samples,
	}, nil
}

// Name возвращает имя файла для отображения
func (f *File) Name() string {
	return f.name
}

// Path возвращает путь к файлу
func (f *File) Path() string {
	return f.path
}

// LenSamples возвращает общее число сэмплов в файле
func (f *File) LenSamples() int {
	return len(f.samples)
}

// Samples возвращает срез всех сэмплов без копирования.
// Срез доступен только для чтения и действителен до вызова Close.
func (f *File) Samples() []int32 {
	return f.samples
}

// DurationSec возвращает длительность файла в секундах при заданной частоте.
// При нулевой частоте возвращает 0.
func (f *File) DurationSec(rate int) float64 {
	if rate <= 0 {
		return 0
	}
	return float64(len(f.samples)) / float64(rate)
}

// Close освобождает отображение; после вызова срез сэмплов недействителен
func (f *File) Close() error {
	if f.mapping == nil {
		return nil
	}
	f.samples = nil
	mapping := f.mapping
	f.mapping = nil
	return unix.Munmap(mapping)
}
