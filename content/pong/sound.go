package pong

type Effect int

const (
	EffectBounce Effect = iota // wall or paddle hit
	EffectScore
)

func (e Effect) String() string {
	switch e {
	case EffectBounce:
		return "bounce"
	case EffectScore:
		return "score"
	}
	return "unknown"
}

// Sound triggers a sound effect. Play must not block; overlapping plays of
// the same effect are allowed.
type Sound interface {
	Play(e Effect)
}

// NopSound discards every effect.
type NopSound struct{}

func (NopSound) Play(Effect) {}
