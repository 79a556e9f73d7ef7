package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"golang.org/x/term"

	"saber-pong/content/config"
)

func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	formatter := log.TextFormatter
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		formatter = log.LogfmtFormatter
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "pong",
		Level:           lvl,
		ReportTimestamp: true,
		Formatter:       formatter,
	}), nil
}

func run() int {
	settingsPath := config.GetEnv(config.EnvSettings, config.DefaultSettingsFile)
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		log.Error("load settings", "path", settingsPath, "err", err)
		return 1
	}

	logger, err := newLogger(settings.LogLevel)
	if err != nil {
		log.Error("configure logging", "level", settings.LogLevel, "err", err)
		return 1
	}

	audioContext := audio.NewContext(config.SampleRate)
	assets, err := LoadAssets(settings, audioContext, logger)
	if err != nil {
		logger.Error("load assets", "err", err)
		return 1
	}
	defer func() {
		if err := assets.Close(); err != nil {
			logger.Warn("release assets", "err", err)
		}
	}()

	ebiten.SetWindowSize(
		int(config.ScreenWidth*settings.WindowScale),
		int(config.ScreenHeight*settings.WindowScale),
	)
	ebiten.SetWindowTitle("Pong")
	ebiten.SetFullscreen(settings.Fullscreen)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetWindowClosingHandled(true)

	assets.Music.Play()

	logger.Info("starting", "assets", settings.AssetDir, "scale", settings.WindowScale)
	if err := ebiten.RunGame(NewGame(assets, logger)); err != nil {
		logger.Error("run game", "err", err)
		return 1
	}
	logger.Info("bye")
	return 0
}

func main() {
	os.Exit(run())
}
