package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"saber-pong/content/pong"
)

// pcmStream is what the wav and mp3 decoders return.
type pcmStream interface {
	io.ReadSeeker
	Length() int64
}

// decodeSound decodes a WAV or MP3 file, chosen by extension, resampled to
// the context's sample rate.
func decodeSound(ctx *audio.Context, path string) (pcmStream, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r := bytes.NewReader(data)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return wav.DecodeWithSampleRate(ctx.SampleRate(), r)
	case ".mp3":
		return mp3.DecodeWithSampleRate(ctx.SampleRate(), r)
	default:
		return nil, fmt.Errorf("unsupported sound format %q", ext)
	}
}

// loadClip decodes a whole sound effect into memory.
func loadClip(ctx *audio.Context, path string) ([]byte, error) {
	s, err := decodeSound(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load sound %s: %w", path, err)
	}
	clip, err := io.ReadAll(s)
	if err != nil {
		return nil, fmt.Errorf("decode sound %s: %w", path, err)
	}
	return clip, nil
}

// loadMusic returns a player that loops path forever.
func loadMusic(ctx *audio.Context, path string, volume float64) (*audio.Player, error) {
	s, err := decodeSound(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load music %s: %w", path, err)
	}
	p, err := ctx.NewPlayer(audio.NewInfiniteLoop(s, s.Length()))
	if err != nil {
		return nil, fmt.Errorf("open music %s: %w", path, err)
	}
	p.SetVolume(volume)
	return p, nil
}

// mixer plays sound effects. Every Play gets its own player, so a bounce
// does not cut off the previous one.
type mixer struct {
	ctx    *audio.Context
	clips  map[pong.Effect][]byte
	volume float64
	logger *log.Logger
}

func newMixer(ctx *audio.Context, volume float64, logger *log.Logger) *mixer {
	return &mixer{
		ctx:    ctx,
		clips:  make(map[pong.Effect][]byte),
		volume: volume,
		logger: logger,
	}
}

func (m *mixer) add(e pong.Effect, clip []byte) {
	m.clips[e] = clip
}

func (m *mixer) Play(e pong.Effect) {
	clip, ok := m.clips[e]
	if !ok {
		m.logger.Warn("no clip for sound effect", "effect", e)
		return
	}
	p := m.ctx.NewPlayerFromBytes(clip)
	p.SetVolume(m.volume)
	p.Play()
}

var _ pong.Sound = (*mixer)(nil)
