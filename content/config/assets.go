package config

// Asset file names, resolved against Settings.AssetDir.
const (
	FontFile        = "arial.ttf"
	BounceSoundFile = "bounce.wav"
	ScoreSoundFile  = "score.wav"
	MusicFile       = "music.wav"
	BackgroundFile  = "background.bmp"
	LeftSaberFile   = "saber-left.bmp"
	RightSaberFile  = "saber-right.bmp"
)

const (
	DefaultAssetDir     = "assets"
	DefaultSettingsFile = "pong.toml"
	SampleRate          = 44100
)
