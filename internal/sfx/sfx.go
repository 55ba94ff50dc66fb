// Package sfx plays short interface sound effects.
package sfx

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 44100

var ErrUnknownSound = errors.New("unknown sound")

// Bank holds raw WAV clips by name. Clips are decoded per play so a sound
// can overlap itself.
type Bank struct {
	clips map[string][]byte
}

// LoadBank reads each named WAV file from dir. Files that are missing or
// not WAV are left out and reported in the joined error; the bank still
// holds every clip that did load.
func LoadBank(dir string, names ...string) (*Bank, error) {
	b := &Bank{clips: make(map[string][]byte, len(names))}
	var errs []error
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("read sound: %w", err))
			continue
		}
		if _, err := wav.DecodeWithoutResampling(bytes.NewReader(data)); err != nil {
			errs = append(errs, fmt.Errorf("decode sound %s: %w", path, err))
			continue
		}
		b.clips[name] = data
	}
	return b, errors.Join(errs...)
}

func (b *Bank) Has(name string) bool {
	if b == nil {
		return false
	}
	_, ok := b.clips[name]
	return ok
}

func (b *Bank) Len() int {
	if b == nil {
		return 0
	}
	return len(b.clips)
}

// Player plays clips from a bank. A nil Player is silent.
type Player struct {
	ctx     *audio.Context
	bank    *Bank
	volume  float64
	playing []*audio.Player
}

func NewPlayer(bank *Bank, volume float64) *Player {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	return &Player{ctx: ctx, bank: bank, volume: volume}
}

func (p *Player) Play(name string) error {
	if p == nil || p.bank == nil {
		return nil
	}
	data, ok := p.bank.clips[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSound, name)
	}
	stream, err := wav.DecodeWithSampleRate(p.ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	pl, err := p.ctx.NewPlayer(stream)
	if err != nil {
		return fmt.Errorf("player %s: %w", name, err)
	}
	pl.SetVolume(p.volume)
	pl.Play()
	p.prune()
	p.playing = append(p.playing, pl)
	return nil
}

// prune drops finished players so they can be collected.
func (p *Player) prune() {
	kept := p.playing[:0]
	for _, pl := range p.playing {
		if pl.IsPlaying() {
			kept = append(kept, pl)
			continue
		}
		_ = pl.Close()
	}
	p.playing = kept
}
