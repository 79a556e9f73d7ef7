package main

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"saber-pong/content/config"
	"saber-pong/content/pong"
	"saber-pong/content/utils"
)

// Assets holds everything loaded from the asset directory at startup.
type Assets struct {
	Face       *text.GoTextFace
	Background *ebiten.Image
	LeftSaber  *ebiten.Image
	RightSaber *ebiten.Image
	Mixer      *mixer
	Music      *audio.Player

	release utils.Releaser
}

// LoadAssets loads every asset or none: when one fails, whatever was
// already loaded is released before the error is returned.
func LoadAssets(s config.Settings, ctx *audio.Context, logger *log.Logger) (*Assets, error) {
	a := &Assets{}
	if err := a.load(s, ctx, logger); err != nil {
		if rerr := a.Close(); rerr != nil {
			logger.Warn("release partially loaded assets", "err", rerr)
		}
		return nil, err
	}
	return a, nil
}

func (a *Assets) load(s config.Settings, ctx *audio.Context, logger *log.Logger) error {
	path := func(name string) string {
		return filepath.Join(s.AssetDir, name)
	}

	a.Mixer = newMixer(ctx, s.EffectsVolume, logger)
	for effect, name := range map[pong.Effect]string{
		pong.EffectBounce: config.BounceSoundFile,
		pong.EffectScore:  config.ScoreSoundFile,
	} {
		clip, err := loadClip(ctx, path(name))
		if err != nil {
			return err
		}
		a.Mixer.add(effect, clip)
	}

	music, err := loadMusic(ctx, path(config.MusicFile), s.MusicVolume)
	if err != nil {
		return err
	}
	a.Music = music
	a.release.Push(music.Close)

	if a.Face, err = loadFont(path(config.FontFile), config.FontSize); err != nil {
		return err
	}

	for _, img := range []struct {
		dst  **ebiten.Image
		name string
	}{
		{&a.Background, config.BackgroundFile},
		{&a.LeftSaber, config.LeftSaberFile},
		{&a.RightSaber, config.RightSaberFile},
	} {
		loaded, err := loadImage(path(img.name))
		if err != nil {
			return err
		}
		*img.dst = loaded
		a.release.Push(func() error {
			loaded.Deallocate()
			return nil
		})
	}

	logger.Debug("assets loaded", "dir", s.AssetDir)
	return nil
}

// Close releases the loaded assets in reverse order of loading.
func (a *Assets) Close() error {
	return a.release.Release()
}
