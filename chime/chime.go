// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chime

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/wav"
)

// Winner tone
const (
	Frequency = 800.0
	Duration  = 500 * time.Millisecond
	StartGain = 0.3
	EndGain   = 0.01
)

// SampleRate of the encoded WAV
const SampleRate beep.SampleRate = 44100

// ContentType of the encoded chime
const ContentType = "audio/wav"

// sine generates a pure tone for a fixed number of samples
type sine struct {
	freq     float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

func newSine(freq float64, duration time.Duration, rate beep.SampleRate) *sine {
	return &sine{freq: freq, total: rate.N(duration), rate: rate}
}

func (s *sine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sine) Err() error { return nil }

// decay scales a stream from 1 down to floor exponentially over total samples
type decay struct {
	streamer beep.Streamer
	floor    float64
	position int
	total    int
}

func newDecay(s beep.Streamer, floor float64, duration time.Duration, rate beep.SampleRate) *decay {
	return &decay{streamer: s, floor: floor, total: rate.N(duration)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := 1.0
		if d.total > 1 {
			t = math.Min(1, float64(d.position)/float64(d.total-1))
		}
		gain := math.Pow(d.floor, t)
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// Streamer returns the winner tone: an 800 Hz sine whose gain falls
// exponentially from StartGain to EndGain over Duration.
func Streamer(rate beep.SampleRate) beep.Streamer {
	tone := newSine(Frequency, Duration, rate)
	shaped := newDecay(tone, EndGain/StartGain, Duration, rate)
	return &effects.Volume{Streamer: shaped, Base: 2, Volume: math.Log2(StartGain)}
}

var (
	once    sync.Once
	encoded []byte
	encErr  error
)

// WAV returns the encoded winner tone, synthesized once per process.
func WAV() ([]byte, error) {
	once.Do(func() {
		encoded, encErr = Encode(SampleRate)
	})
	return encoded, encErr
}

// Encode renders the tone as 16-bit mono PCM WAV.
func Encode(rate beep.SampleRate) ([]byte, error) {
	format := beep.Format{SampleRate: rate, NumChannels: 1, Precision: 2}
	var buf seekBuffer
	if err := wav.Encode(&buf, Streamer(rate), format); err != nil {
		return nil, fmt.Errorf("encode chime: %w", err)
	}
	return buf.Bytes(), nil
}
