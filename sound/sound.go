package sound

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	eba "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

var errLogger = log.New(os.Stderr, "[ FAIL ]: ", log.Lshortfile)

type Context struct {
	sampleRate int
	context    *eba.Context

	audioMap     map[string][]byte
	audioMapLock sync.Mutex
}

func NewContext(sampleRate int) (*Context, error) {
	c := new(Context)
	c.sampleRate = sampleRate
	c.audioMap = make(map[string][]byte)

	if eba.CurrentContext() != nil {
		return nil, fmt.Errorf("audio context already exists")
	}

	c.context = eba.NewContext(sampleRate)

	return c, nil
}

func (c *Context) SampleRate() int {
	return c.sampleRate
}

// IsReady reports whether the platform lets us play sound yet.
// Browsers keep audio suspended until the first user interaction.
func (c *Context) IsReady() bool {
	return c.context.IsReady()
}

// RegisterAudio decodes audioFile in the background and stores it under audioName.
// The returned channel receives exactly one value.
func (c *Context) RegisterAudio(
	audioName string,
	audioFile []byte,
	audioFileType string,
) <-chan error {
	errChan := make(chan error, 1)

	go func() {
		decoded, err := decodeAudio(audioFile, audioFileType, c.SampleRate())
		if err != nil {
			errChan <- fmt.Errorf("register %s: %w", audioName, err)
			close(errChan)
			return
		}

		c.audioMapLock.Lock()
		c.audioMap[audioName] = decoded
		c.audioMapLock.Unlock()

		errChan <- nil
		close(errChan)
	}()

	return errChan
}

func (c *Context) IsRegistered(audioName string) bool {
	c.audioMapLock.Lock()
	defer c.audioMapLock.Unlock()

	_, ok := c.audioMap[audioName]
	return ok
}

func (c *Context) NewPlayer(audioName string) (*Player, error) {
	c.audioMapLock.Lock()
	audioBytes, ok := c.audioMap[audioName]
	c.audioMapLock.Unlock()

	if !ok {
		return nil, fmt.Errorf("audio %s is not registered", audioName)
	}

	p := new(Player)
	var err error
	p.player, err = c.context.NewPlayer(bytes.NewReader(audioBytes))
	if err != nil {
		return nil, err
	}

	return p, nil
}

// decodeAudio returns 16 bit stereo samples at sampleRate.
func decodeAudio(
	audioFile []byte,
	audioFileType string,
	sampleRate int,
) ([]byte, error) {
	var stream io.Reader
	var err error

	switch strings.ToLower(audioFileType) {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(audioFile))
	default:
		return nil, fmt.Errorf("unsupported audio type %q", audioFileType)
	}
	if err != nil {
		return nil, err
	}

	return io.ReadAll(stream)
}

type Player struct {
	player *eba.Player
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

func (p *Player) Rewind() {
	if err := p.player.SetPosition(0); err != nil {
		errLogger.Printf("rewind failed: %v", err)
	}
}

func (p *Player) SetPosition(offset time.Duration) error {
	return p.player.SetPosition(offset)
}

func (p *Player) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	p.player.SetVolume(volume)
}

func (p *Player) Volume() float64 {
	return p.player.Volume()
}
