package synth

import "time"

const (
	notePickup = 523.25 // C5
	noteSnapHi = 783.99 // G5
	noteC5     = 523.25
	noteE5     = 659.25
	noteG5     = 783.99
	noteC6     = 1046.50
	noteA3     = 220.00
	noteF3     = 174.61
	noteD3     = 146.83
)

func tone(freq float64, d time.Duration, wave Wave) Note {
	return Note{
		Freq:     freq,
		Duration: d,
		Wave:     wave,
		Attack:   4 * time.Millisecond,
		Release:  d / 3,
	}
}

func rest(d time.Duration) Note {
	return Note{Duration: d}
}

var (
	Pickup = Effect{
		Name:   "pickup",
		Volume: 0.25,
		Notes: []Note{
			tone(notePickup, 40*time.Millisecond, WaveTriangle),
		},
	}

	Snap = Effect{
		Name:   "snap",
		Volume: 0.35,
		Notes: []Note{
			tone(noteSnapHi, 60*time.Millisecond, WaveTriangle),
		},
	}

	Solved = Effect{
		Name:   "solved",
		Volume: 0.4,
		Notes: []Note{
			tone(noteC5, 110*time.Millisecond, WaveSine),
			tone(noteE5, 110*time.Millisecond, WaveSine),
			tone(noteG5, 110*time.Millisecond, WaveSine),
			rest(30 * time.Millisecond),
			tone(noteC6, 300*time.Millisecond, WaveSine),
		},
	}

	Expired = Effect{
		Name:   "expired",
		Volume: 0.3,
		Notes: []Note{
			tone(noteA3, 180*time.Millisecond, WaveSquare),
			tone(noteF3, 180*time.Millisecond, WaveSquare),
			tone(noteD3, 400*time.Millisecond, WaveSquare),
		},
	}
)

var All = []Effect{Pickup, Snap, Solved, Expired}
