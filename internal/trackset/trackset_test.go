package trackset

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeRawFile(t *testing.T, dir, name string, samples []int32) string {
	t.Helper()

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.NativeEndian, samples); err != nil {
		t.Fatalf("ошибка сериализации сэмплов: %v", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("ошибка записи файла: %v", err)
	}
	return path
}

func defaultOptions() Options {
	return Options{Rate: 10, MinZoomSamples: 1, MaxWidthSec: 2.0}
}

func TestNewInvalidRate(t *testing.T) {
	_, err := New(nil, Options{Rate: 0})
	if !errors.Is(err, ErrInvalidRate) {
		t.Errorf("New с нулевой частотой: %v; expected ErrInvalidRate", err)
	}
}

func TestNewSkipsBadFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeRawFile(t, dir, "good.raw", []int32{1, 2, 3, 4})

	// Невыравненный файл пропускается, набор строится из оставшихся
	bad := filepath.Join(dir, "bad.raw")
	if err := os.WriteFile(bad, make([]byte, 5), 0644); err != nil {
		t.Fatalf("ошибка записи файла: %v", err)
	}

	set, err := New([]string{bad, good}, defaultOptions())
	if err != nil {
		t.Fatalf("ошибка конструирования набора: %v", err)
	}
	defer set.Close()

	if set.Len() != 1 {
		t.Errorf("Len = %d; expected 1", set.Len())
	}
	if set.Tracks()[0].Name() != "good.raw" {
		t.Errorf("остался трек %s; expected good.raw", set.Tracks()[0].Name())
	}
}

func TestNewNoTracks(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.raw")
	if err := os.WriteFile(bad, make([]byte, 5), 0644); err != nil {
		t.Fatalf("ошибка записи файла: %v", err)
	}

	// Если не открылся ни один файл, конструирование фатально
	_, err := New([]string{bad, filepath.Join(dir, "missing.raw")}, defaultOptions())
	if !errors.Is(err, ErrNoTracks) {
		t.Errorf("New без читаемых файлов: %v; expected ErrNoTracks", err)
	}
}

func TestDurationFromLongestTrack(t *testing.T) {
	dir := t.TempDir()
	long := writeRawFile(t, dir, "long.raw", make([]int32, 40))
	short := writeRawFile(t, dir, "short.raw", make([]int32, 10))

	set, err := New([]string{long, short}, defaultOptions())
	if err != nil {
		t.Fatalf("ошибка конструирования набора: %v", err)
	}
	defer set.Close()

	// 40 сэмплов при 10 Гц
	if d := set.Window().Duration(); d != 4.0 {
		t.Errorf("Duration = %f; expected 4.0", d)
	}
}

func TestVisibleAmplitudeRange(t *testing.T) {
	dir := t.TempDir()
	// Первый трек: размах [-0.5, 0.25], второй: [0, 0.75]
	a := writeRawFile(t, dir, "a.raw", []int32{-(1 << 30), 1 << 29, 0, 0, 0, 0, 0, 0, 0, 0})
	b := writeRawFile(t, dir, "b.raw", []int32{0, 3 << 28, 0, 0, 0, 0, 0, 0, 0, 0})

	set, err := New([]string{a, b}, defaultOptions())
	if err != nil {
		t.Fatalf("ошибка конструирования набора: %v", err)
	}
	defer set.Close()

	// Окно шириной 1 секунда покрывает все 10 сэмплов
	minY, maxY := set.VisibleAmplitudeRange()
	if math.Abs(float64(minY)+0.5) > 1e-6 {
		t.Errorf("minY = %f; expected -0.5", minY)
	}
	if math.Abs(float64(maxY)-0.375) > 1e-6 {
		t.Errorf("maxY = %f; expected 0.375", maxY)
	}
}

func TestShortTrackBeyondView(t *testing.T) {
	dir := t.TempDir()
	long := writeRawFile(t, dir, "long.raw", make([]int32, 40))
	short := writeRawFile(t, dir, "short.raw", []int32{1 << 30, 1 << 30, 1 << 30, 1 << 30, 1 << 30})

	set, err := New([]string{long, short}, defaultOptions())
	if err != nil {
		t.Fatalf("ошибка конструирования набора: %v", err)
	}
	defer set.Close()

	// Перематываем в конец: окно [2, 4] секунды, сэмплы [20, 40)
	set.Window().JumpEnd()

	// Короткий трек закончился до начала окна: строка корзин без данных
	buckets := set.VisibleBuckets(1, 8)
	if len(buckets) != 8 {
		t.Fatalf("получено %d корзин; expected 8", len(buckets))
	}
	for i, bucket := range buckets {
		if bucket.HasData {
			t.Errorf("корзина %d короткого трека имеет данные", i)
		}
	}

	// Размах при этом определяется только длинным треком
	minY, maxY := set.VisibleAmplitudeRange()
	if minY != 0 || maxY != 0 {
		t.Errorf("VisibleAmplitudeRange = (%f, %f); expected (0, 0)", minY, maxY)
	}
}

func TestVisibleBuckets(t *testing.T) {
	dir := t.TempDir()
	path := writeRawFile(t, dir, "t.raw", []int32{math.MinInt32, 0, math.MaxInt32, 0, 0, 0, 0, 0, 0, 0})

	set, err := New([]string{path}, defaultOptions())
	if err != nil {
		t.Fatalf("ошибка конструирования набора: %v", err)
	}
	defer set.Close()

	buckets := set.VisibleBuckets(0, 10)
	if len(buckets) != 10 {
		t.Fatalf("получено %d корзин; expected 10", len(buckets))
	}
	if !buckets[0].HasData || buckets[0].Min != -1.0 {
		t.Errorf("корзина 0 = %+v; expected минимум -1.0", buckets[0])
	}
	if !buckets[2].HasData || buckets[2].Max < 0.999 {
		t.Errorf("корзина 2 = %+v; expected максимум около 1.0", buckets[2])
	}
}
