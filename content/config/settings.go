package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
)

// Settings holds the optional runtime settings read from pong.toml.
// Physics is not configurable here; see the constants in config.go.
type Settings struct {
	AssetDir      string  `toml:"asset_dir"`
	WindowScale   float64 `toml:"window_scale"`
	Fullscreen    bool    `toml:"fullscreen"`
	EffectsVolume float64 `toml:"effects_volume"`
	MusicVolume   float64 `toml:"music_volume"`
	LogLevel      string  `toml:"log_level"`
}

func DefaultSettings() Settings {
	return Settings{
		AssetDir:      DefaultAssetDir,
		WindowScale:   1,
		EffectsVolume: 1,
		MusicVolume:   0.5,
		LogLevel:      "info",
	}
}

// LoadSettings reads path over the defaults. A missing file is not an error.
// PONG_ASSETS and PONG_LOG_LEVEL override the file.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	if path != "" {
		md, err := toml.DecodeFile(path, &s)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
		default:
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				keys := make([]string, 0, len(undecoded))
				for _, k := range undecoded {
					keys = append(keys, k.String())
				}
				return Settings{}, fmt.Errorf("settings %s: unknown keys: %s", path, strings.Join(keys, ", "))
			}
		}
	}

	s.AssetDir = GetEnv(EnvAssets, s.AssetDir)
	s.LogLevel = GetEnv(EnvLogLevel, s.LogLevel)

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) Validate() error {
	if s.AssetDir == "" {
		return errors.New("settings: asset_dir is empty")
	}
	if s.WindowScale <= 0 {
		return fmt.Errorf("settings: window_scale must be positive, got %v", s.WindowScale)
	}
	if s.EffectsVolume < 0 || s.EffectsVolume > 1 {
		return fmt.Errorf("settings: effects_volume must be within [0, 1], got %v", s.EffectsVolume)
	}
	if s.MusicVolume < 0 || s.MusicVolume > 1 {
		return fmt.Errorf("settings: music_volume must be within [0, 1], got %v", s.MusicVolume)
	}
	return nil
}
