package tts

import (
	"context"
	"log"
	"time"
)

// silencePad is the pause inserted between consecutive chunk renders.
const silencePad = 200 * time.Millisecond

// RenderResult is the assembled audio for one input file.
type RenderResult struct {
	Samples    []float32
	SampleRate int
	Rendered   int // chunks that produced audio
	Failed     int // chunks that errored and were skipped
}

// RenderChunks synthesizes every chunk in order with the same voice and
// concatenates the results, separating consecutive renders with the silence
// pad. A failed chunk is logged, counted and skipped; the rest still
// render. When nothing renders the result carries no samples.
func RenderChunks(ctx context.Context, eng Engine, chunks []string, voice string) RenderResult {
	res := RenderResult{SampleRate: eng.SampleRate()}
	pad := silenceSamples(eng.SampleRate(), silencePad)

	for i, chunk := range chunks {
		samples, err := eng.Synthesize(ctx, chunk, voice)
		if err != nil {
			log.Printf("[error] chunk %d/%d failed: %v", i+1, len(chunks), err)
			res.Failed++
			continue
		}
		if res.Rendered > 0 {
			res.Samples = append(res.Samples, pad...)
		}
		res.Samples = append(res.Samples, samples...)
		res.Rendered++
	}
	return res
}

func silenceSamples(rate int, d time.Duration) []float32 {
	return make([]float32, int(float64(rate)*d.Seconds()))
}
