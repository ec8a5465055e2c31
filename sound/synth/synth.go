// Package synth builds the game's sound effects from oscillators
// and encodes them as wav, so no audio files need to be shipped.
package synth

import (
	"errors"
	"io"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/wav"
)

type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// Note is one tone of an effect.
// Notes with a zero Freq are rests.
type Note struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave

	Attack  time.Duration
	Release time.Duration
}

type Effect struct {
	Name  string
	Notes []Note
	// relative to full scale, 0..1
	Volume float64
}

func (e Effect) Duration() time.Duration {
	var d time.Duration
	for _, n := range e.Notes {
		d += n.Duration
	}
	return d
}

// Stream returns a streamer playing e once at rate.
func (e Effect) Stream(rate beep.SampleRate) beep.Streamer {
	streamers := make([]beep.Streamer, 0, len(e.Notes))
	for _, n := range e.Notes {
		streamers = append(streamers, noteStreamer(n, rate))
	}

	return withVolume(beep.Seq(streamers...), e.Volume)
}

// EncodeWAV renders e as a 16 bit stereo wav file.
func (e Effect) EncodeWAV(sampleRate int) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, errors.New("synth: sample rate must be positive")
	}

	rate := beep.SampleRate(sampleRate)
	format := beep.Format{
		SampleRate:  rate,
		NumChannels: 2,
		Precision:   2,
	}

	buf := &memFile{}
	if err := wav.Encode(buf, e.Stream(rate), format); err != nil {
		return nil, err
	}

	return buf.data, nil
}

// =================================
// streamers
// =================================

type oscillator struct {
	freq     float64
	wave     Wave
	phase    float64
	position int
	length   int
	rate     beep.SampleRate
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	if o.position >= o.length {
		return 0, false
	}

	for i := range samples {
		if o.position >= o.length {
			return i, true
		}

		var v float64
		if o.freq > 0 {
			switch o.wave {
			case WaveSine:
				v = math.Sin(2 * math.Pi * o.phase)
			case WaveSquare:
				if o.phase < 0.5 {
					v = 1
				} else {
					v = -1
				}
			case WaveTriangle:
				v = 1 - 4*math.Abs(o.phase-0.5)
			}
		}

		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}

	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades the start and end of a note to avoid clicks
type envelope struct {
	streamer beep.Streamer
	position int
	length   int
	attack   int
	release  int
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0

		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.length - e.position; e.release > 0 && left < e.release {
			vol = min(vol, float64(left)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

func noteStreamer(n Note, rate beep.SampleRate) beep.Streamer {
	length := rate.N(n.Duration)

	osc := &oscillator{
		freq:   n.Freq,
		wave:   n.Wave,
		length: length,
		rate:   rate,
	}

	return &envelope{
		streamer: osc,
		length:   length,
		attack:   min(rate.N(n.Attack), length),
		release:  min(rate.N(n.Release), length),
	}
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	vol = min(vol, 1)
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// =================================
// memFile
// =================================

// memFile is an in memory io.WriteSeeker, wav.Encode patches the header
// after the samples are written.
type memFile struct {
	data []byte
	pos  int
}

func (m *memFile) Write(p []byte) (int, error) {
	end := m.pos + len(p)
	if end > len(m.data) {
		m.data = append(m.data, make([]byte, end-len(m.data))...)
	}
	copy(m.data[m.pos:], p)
	m.pos = end
	return len(p), nil
}

func (m *memFile) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(m.pos) + offset
	case io.SeekEnd:
		abs = int64(len(m.data)) + offset
	default:
		return 0, errors.New("synth: invalid whence")
	}
	if abs < 0 {
		return 0, errors.New("synth: negative position")
	}
	m.pos = int(abs)
	return abs, nil
}
