package main

import (
	"jigsaw/puzzle"
	"jigsaw/sound"
	"jigsaw/sound/synth"
)

const SampleRate = 44100

const (
	SoundPickup  = "pickup"
	SoundSnap    = "snap"
	SoundSolved  = "solved"
	SoundExpired = "expired"
)

var TheSoundManager struct {
	Context *sound.Context

	volume     float64
	prevVolume float64

	muted bool

	tmpPlayers map[string][]*Player

	// registration results, drained in UpdateSound
	registering []<-chan error
}

func InitSound() {
	sm := &TheSoundManager

	sm.volume = 1
	sm.prevVolume = 1
	sm.muted = FlagMute
	sm.tmpPlayers = make(map[string][]*Player)

	var err error
	sm.Context, err = sound.NewContext(SampleRate)
	if err != nil {
		ErrorLogger.Fatalf("couldn't initialize sound %v", err)
	}

	for _, effect := range synth.All {
		wavBytes, err := effect.EncodeWAV(SampleRate)
		if err != nil {
			ErrorLogger.Printf("failed to synthesize %s: %v", effect.Name, err)
			continue
		}
		sm.registering = append(
			sm.registering,
			sm.Context.RegisterAudio(effect.Name, wavBytes, ".wav"),
		)
	}
}

func UpdateSound() {
	sm := &TheSoundManager

	pending := sm.registering[:0]
	for _, ch := range sm.registering {
		select {
		case err := <-ch:
			if err != nil {
				ErrorLogger.Printf("%v", err)
			}
		default:
			pending = append(pending, ch)
		}
	}
	sm.registering = pending

	// change volumes
	if sm.prevVolume != sm.volume {
		for _, players := range sm.tmpPlayers {
			for _, player := range players {
				player.player.SetVolume(player.volume * sm.volume)
			}
		}
	}

	sm.prevVolume = sm.volume
}

func GlobalVolume() float64 {
	sm := &TheSoundManager

	return sm.volume
}

func SetGlobalVolume(volume float64) {
	sm := &TheSoundManager
	sm.volume = puzzle.Clamp(volume, 0, 1)
}

func IsMuted() bool {
	return TheSoundManager.muted
}

func SetMuted(muted bool) {
	TheSoundManager.muted = muted
}

func IsSoundReady() bool {
	sm := &TheSoundManager
	return sm.Context != nil && sm.Context.IsReady()
}

// PlaySoundBytes plays a registered sound effect, reusing an idle player if there is one.
func PlaySoundBytes(name string, volume float64) {
	if IsMuted() || !IsSoundReady() {
		return
	}

	sm := &TheSoundManager

	for _, player := range sm.tmpPlayers[name] {
		if !player.IsPlaying() {
			player.SetVolume(volume)
			player.player.Rewind()
			player.Play()
			return
		}
	}

	if !sm.Context.IsRegistered(name) {
		return
	}

	// all players are busy, create new one
	p, err := sm.Context.NewPlayer(name)
	if err != nil {
		ErrorLogger.Printf("failed to create player for %s: %v", name, err)
		return
	}

	tmpP := &Player{player: p}
	tmpP.SetVolume(volume)
	tmpP.Play()

	sm.tmpPlayers[name] = append(sm.tmpPlayers[name], tmpP)
}

type Player struct {
	player *sound.Player
	volume float64
}

func (p *Player) IsPlaying() bool {
	return p.player.IsPlaying()
}

func (p *Player) Pause() {
	p.player.Pause()
}

func (p *Player) Play() {
	p.player.Play()
}

func (p *Player) SetVolume(volume float64) {
	volume = puzzle.Clamp(volume, 0, 1)
	p.volume = volume
	p.player.SetVolume(p.volume * GlobalVolume())
}

func (p *Player) Volume() float64 {
	return p.volume
}
