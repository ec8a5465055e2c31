package synth

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
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

func TestEffectStreamLength(t *testing.T) {
	rate := beep.SampleRate(44100)

	for _, e := range All {
		samples := drain(t, e.Stream(rate))

		want := 0
		for _, n := range e.Notes {
			want += rate.N(n.Duration)
		}
		if len(samples) != want {
			t.Errorf("%s: expected %d samples, got %d", e.Name, want, len(samples))
		}
	}
}

func TestEffectStreamInRange(t *testing.T) {
	rate := beep.SampleRate(22050)

	for _, e := range All {
		for i, s := range drain(t, e.Stream(rate)) {
			if s[0] < -1 || s[0] > 1 || s[1] < -1 || s[1] > 1 {
				t.Fatalf("%s: sample %d out of range: %v", e.Name, i, s)
			}
		}
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := noteStreamer(tone(440, 50*time.Millisecond, WaveSquare), rate)

	samples := drain(t, s)
	if samples[0][0] != 0 {
		t.Fatalf("expected the attack to start at zero, got %v", samples[0][0])
	}
	if last := samples[len(samples)-1][0]; last > 0.01 || last < -0.01 {
		t.Fatalf("expected the release to end near zero, got %v", last)
	}
}

func TestRestIsSilent(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, s := range drain(t, noteStreamer(rest(10*time.Millisecond), rate)) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("rest produced sound: %v", s)
		}
	}
}

func TestEncodeWAV(t *testing.T) {
	data, err := Snap.EncodeWAV(44100)
	if err != nil {
		t.Fatalf("EncodeWAV: %v", err)
	}

	if !bytes.HasPrefix(data, []byte("RIFF")) || string(data[8:12]) != "WAVE" {
		t.Fatalf("missing wav header")
	}
	if size := binary.LittleEndian.Uint32(data[4:8]); int(size) != len(data)-8 {
		t.Fatalf("riff size %d does not match file size %d", size, len(data))
	}

	streamer, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	defer streamer.Close()

	if format.SampleRate != 44100 || format.NumChannels != 2 {
		t.Fatalf("unexpected format %+v", format)
	}
	if want := beep.SampleRate(44100).N(Snap.Duration()); streamer.Len() != want {
		t.Fatalf("expected %d frames, got %d", want, streamer.Len())
	}
}

func TestEncodeWAVRejectsBadRate(t *testing.T) {
	if _, err := Snap.EncodeWAV(0); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestMemFileSeekAndOverwrite(t *testing.T) {
	m := &memFile{}
	m.Write([]byte("hello world"))
	if _, err := m.Seek(0, 0); err != nil {
		t.Fatalf("seek: %v", err)
	}
	m.Write([]byte("HELLO"))

	if string(m.data) != "HELLO world" {
		t.Fatalf("unexpected content %q", m.data)
	}
	if _, err := m.Seek(-1, 0); err == nil {
		t.Fatalf("expected an error for a negative position")
	}
}
