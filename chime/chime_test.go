// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chime

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"
)

func drain(t *testing.T) [][2]float64 {
	t.Helper()
	s := Streamer(SampleRate)
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		t.Fatalf("stream error: %v", err)
	}
	return out
}

func TestStreamerLengthAndGain(t *testing.T) {
	samples := drain(t)

	if want := SampleRate.N(Duration); len(samples) != want {
		t.Fatalf("expected %d samples, got %d", want, len(samples))
	}

	peak := func(from, to int) float64 {
		p := 0.0
		for _, s := range samples[from:to] {
			p = math.Max(p, math.Abs(s[0]))
		}
		return p
	}

	// One full period at 800 Hz is about 55 samples
	if got := peak(0, 60); got > StartGain+1e-9 || got < StartGain*0.95 {
		t.Errorf("opening peak %v not near %v", got, StartGain)
	}
	n := len(samples)
	if got := peak(n-60, n); got > EndGain*1.05 {
		t.Errorf("closing peak %v above %v", got, EndGain)
	}
	if peak(n/2-60, n/2) >= peak(0, 60) {
		t.Error("expected the tone to decay")
	}
}

func TestWAV(t *testing.T) {
	data, err := WAV()
	if err != nil {
		t.Fatalf("WAV failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("RIFF")) || string(data[8:12]) != "WAVE" {
		t.Fatalf("missing RIFF/WAVE header: %q", data[:12])
	}

	// 16-bit mono
	wantData := SampleRate.N(Duration) * 2
	if got := binary.LittleEndian.Uint32(data[40:44]); int(got) != wantData {
		t.Errorf("expected data size %d, got %d", wantData, got)
	}
	if len(data) != 44+wantData {
		t.Errorf("expected %d bytes, got %d", 44+wantData, len(data))
	}

	again, _ := WAV()
	if &again[0] != &data[0] {
		t.Error("expected cached bytes")
	}
}

func TestSeekBuffer(t *testing.T) {
	var b seekBuffer
	b.Write([]byte("hello world"))
	if _, err := b.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek failed: %v", err)
	}
	b.Write([]byte("J"))
	if _, err := b.Seek(0, io.SeekEnd); err != nil {
		t.Fatalf("Seek failed: %v", err)
	}
	b.Write([]byte("!"))

	if got := string(b.Bytes()); got != "Jello world!" {
		t.Errorf("expected %q, got %q", "Jello world!", got)
	}
	if _, err := b.Seek(-1, io.SeekStart); err == nil {
		t.Error("expected error for negative position")
	}
}
