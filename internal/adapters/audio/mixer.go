// Package audio assembles auditory stressor tracks: randomly ordered sound
// clips separated by silence, rendered as one session-length WAV file.
package audio

import (
	"fmt"
	"io/fs"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// MixParams controls the assembly of a stimulus track.
type MixParams struct {
	// Silence between consecutive clips is drawn uniformly from this range.
	SilenceMinSeconds float64
	SilenceMaxSeconds float64

	// Length of the linear onset ramp softening each clip's attack.
	TransitionSeconds float64

	TotalMinutes int

	// Optional whitelist of file base names. Empty means every .wav under
	// the input directory qualifies.
	FileNames []string
}

func DefaultMixParams() MixParams {
	return MixParams{
		SilenceMinSeconds: 3.0,
		SilenceMaxSeconds: 15.0,
		TransitionSeconds: 0.1,
		TotalMinutes:      13,
	}
}

func (p MixParams) validate() error {
	if p.TotalMinutes <= 0 {
		return fmt.Errorf("total duration must be positive, got %d minutes", p.TotalMinutes)
	}
	if p.SilenceMaxSeconds < p.SilenceMinSeconds {
		return fmt.Errorf("silence range [%g, %g] is inverted", p.SilenceMinSeconds, p.SilenceMaxSeconds)
	}
	return nil
}

// Mixer concatenates clips from an input directory into stimulus tracks.
type Mixer struct {
	rng *rand.Rand
}

func NewMixer(seed int64) *Mixer {
	return &Mixer{rng: rand.New(rand.NewSource(seed))}
}

// Mix draws clips with replacement from inputDir, softens each onset,
// inserts a random stretch of silence after it and repeats until the track
// exceeds the requested length, then truncates to the exact duration and
// writes the result to outputFile.
func (m *Mixer) Mix(inputDir, outputFile string, params MixParams) error {
	if err := params.validate(); err != nil {
		return err
	}

	files, err := collectClips(inputDir, params.FileNames)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no usable clips under %s", inputDir)
	}

	var merged []float64
	sampleRate := 0
	channels := 0
	targetSamples := 0

	for targetSamples == 0 || len(merged) <= targetSamples {
		file := files[m.rng.Intn(len(files))]
		samples, format, err := decodeClip(file)
		if err != nil {
			return err
		}
		if sampleRate == 0 {
			sampleRate = format.SampleRate
			channels = format.NumChannels
			targetSamples = params.TotalMinutes * 60 * sampleRate * channels
		} else if format.SampleRate != sampleRate || format.NumChannels != channels {
			return fmt.Errorf("clip %s has format %dHz/%dch, track is %dHz/%dch",
				filepath.Base(file), format.SampleRate, format.NumChannels, sampleRate, channels)
		}

		applyOnsetRamp(samples, params.TransitionSeconds, sampleRate, channels)

		merged = append(merged, samples...)
		gap := params.SilenceMinSeconds + m.rng.Float64()*(params.SilenceMaxSeconds-params.SilenceMinSeconds)
		merged = append(merged, make([]float64, int(gap*float64(sampleRate))*channels)...)
	}

	merged = merged[:targetSamples]
	return writeTrack(outputFile, merged, sampleRate, channels)
}

func collectClips(inputDir string, names []string) ([]string, error) {
	allowed := make(map[string]bool, len(names))
	for _, name := range names {
		allowed[name] = true
	}

	var files []string
	err := filepath.WalkDir(inputDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(path), ".wav") {
			return nil
		}
		if len(allowed) > 0 && !allowed[filepath.Base(path)] {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan clip directory %s: %w", inputDir, err)
	}

	// Walk order must not influence which clip a given draw picks.
	sort.Strings(files)
	return files, nil
}

// decodeClip reads a WAV file and normalizes its samples to [-1, 1].
func decodeClip(path string) ([]float64, goaudio.Format, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, goaudio.Format{}, fmt.Errorf("open clip: %w", err)
	}
	defer file.Close()

	decoder := wav.NewDecoder(file)
	buffer, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, goaudio.Format{}, fmt.Errorf("decode clip %s: %w", filepath.Base(path), err)
	}
	if buffer.Format == nil || buffer.Format.SampleRate == 0 {
		return nil, goaudio.Format{}, fmt.Errorf("clip %s has no format header", filepath.Base(path))
	}

	scale := float64(int64(1) << (buffer.SourceBitDepth - 1))
	samples := make([]float64, len(buffer.Data))
	for i, value := range buffer.Data {
		samples[i] = float64(value) / scale
	}
	return samples, *buffer.Format, nil
}

// applyOnsetRamp fades the clip in linearly so the cut from silence to sound
// has no audible click.
func applyOnsetRamp(samples []float64, seconds float64, sampleRate, channels int) {
	frames := int(seconds * float64(sampleRate))
	if frames <= 1 {
		return
	}
	for frame := 0; frame < frames; frame++ {
		gain := float64(frame) / float64(frames-1)
		for ch := 0; ch < channels; ch++ {
			index := frame*channels + ch
			if index >= len(samples) {
				return
			}
			samples[index] *= gain
		}
	}
}

func writeTrack(path string, samples []float64, sampleRate, channels int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer out.Close()

	buffer := &goaudio.IntBuffer{
		Format:         &goaudio.Format{SampleRate: sampleRate, NumChannels: channels},
		SourceBitDepth: 16,
		Data:           make([]int, len(samples)),
	}
	for i, sample := range samples {
		buffer.Data[i] = int(sample * float64(math.MaxInt16))
	}

	encoder := wav.NewEncoder(out, sampleRate, 16, channels, 1)
	if err := encoder.Write(buffer); err != nil {
		return fmt.Errorf("encode track: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("finalize track: %w", err)
	}
	return nil
}
