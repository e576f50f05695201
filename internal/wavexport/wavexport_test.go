package wavexport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
)

func TestWriteWAVRoundTrip(t *testing.T) {
	samples := []int32{0, 1 << 30, -(1 << 30), 42, -42}
	path := filepath.Join(t.TempDir(), "out.wav")

	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("ошибка создания файла: %v", err)
	}

	if err := WriteWAV(out, samples, 48000); err != nil {
		t.Fatalf("ошибка записи WAV: %v", err)
	}
	out.Close()

	// Читаем контейнер обратно и сверяем заголовок и данные
	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("ошибка открытия файла: %v", err)
	}
	defer in.Close()

	dec := wav.NewDecoder(in)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("ошибка чтения WAV: %v", err)
	}

	if dec.SampleRate != 48000 {
		t.Errorf("SampleRate = %d; expected 48000", dec.SampleRate)
	}
	if dec.NumChans != 1 {
		t.Errorf("NumChans = %d; expected 1", dec.NumChans)
	}
	if dec.BitDepth != 32 {
		t.Errorf("BitDepth = %d; expected 32", dec.BitDepth)
	}

	if len(buf.Data) != len(samples) {
		t.Fatalf("прочитано %d сэмплов; expected %d", len(buf.Data), len(samples))
	}
	for i, sample := range samples {
		if int32(buf.Data[i]) != sample {
			t.Errorf("сэмпл %d = %d; expected %d", i, buf.Data[i], sample)
		}
	}
}

func TestWriteWAVInvalidRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("ошибка создания файла: %v", err)
	}
	defer out.Close()

	if err := WriteWAV(out, []int32{1, 2, 3}, 0); err == nil {
		t.Error("WriteWAV с нулевой частотой не вернул ошибку")
	}
}
