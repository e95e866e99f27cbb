package tts

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// wavFormatIEEEFloat is the WAV fmt tag for 32-bit float samples.
const wavFormatIEEEFloat = 3

// WriteWAV writes mono float32 samples to path as a 32-bit IEEE float WAV
// file, creating the parent directory when needed.
func WriteWAV(path string, samples []float32, sampleRate int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 32, 1, wavFormatIEEEFloat)
	for _, s := range samples {
		if err := enc.WriteFrame(s); err != nil {
			return fmt.Errorf("failed to write wav frame: %w", err)
		}
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}
	return f.Close()
}

// DecodeWAV converts an in-memory WAV file into float32 samples plus the
// file's sample rate. Integer PCM is normalized into [-1, 1] by its source
// bit depth; 32-bit IEEE float files pass through unscaled.
func DecodeWAV(data []byte) ([]float32, int, error) {
	dec := wav.NewDecoder(bytes.NewReader(data))
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode wav: %w", err)
	}
	if buf == nil || buf.Format == nil {
		return nil, 0, fmt.Errorf("failed to decode wav: no audio data")
	}
	if dec.WavAudioFormat == wavFormatIEEEFloat && dec.BitDepth == 32 {
		return floatSamples(buf), buf.Format.SampleRate, nil
	}
	return normalize(buf, int(dec.BitDepth)), buf.Format.SampleRate, nil
}

// floatSamples recovers IEEE float samples from the decoder's raw int32
// reads, which preserve the original bit patterns.
func floatSamples(buf *audio.IntBuffer) []float32 {
	out := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		out[i] = math.Float32frombits(uint32(int32(v)))
	}
	return out
}

func normalize(buf *audio.IntBuffer, bitDepth int) []float32 {
	out := make([]float32, len(buf.Data))
	switch bitDepth {
	case 8: // stored unsigned in the container
		for i, v := range buf.Data {
			out[i] = (float32(v) - 128) / 128
		}
	case 24:
		for i, v := range buf.Data {
			out[i] = float32(v) / (1 << 23)
		}
	case 32:
		for i, v := range buf.Data {
			out[i] = float32(v) / (1 << 31)
		}
	default:
		for i, v := range buf.Data {
			out[i] = float32(v) / (1 << 15)
		}
	}
	return out
}
