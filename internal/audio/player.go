// internal/audio/player.go
package audio

import (
	"go-circle-shooter/internal/event"

	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"
)

// SoundFor сопоставляет событию игры звуковой эффект
func SoundFor(t event.EventType) (Sound, bool) {
	switch t {
	case event.ProjectileFired:
		return SoundShot, true
	case event.EnemyEliminated:
		return SoundElimination, true
	case event.PowerUpCollected:
		return SoundPowerUp, true
	case event.GameOver:
		return SoundGameOver, true
	}
	return 0, false
}

// Player проигрывает заранее синтезированные эффекты через аудиоконтекст ebiten.
type Player struct {
	ctx   *ebitenaudio.Context
	clips map[Sound][]byte
	log   zerolog.Logger
}

// NewPlayer синтезирует все эффекты и открывает (или переиспользует) аудиоконтекст
func NewPlayer(volume float64, log zerolog.Logger) *Player {
	ctx := ebitenaudio.CurrentContext()
	if ctx == nil {
		ctx = ebitenaudio.NewContext(SampleRate)
	}
	p := &Player{ctx: ctx, clips: make(map[Sound][]byte), log: log}
	for _, s := range []Sound{SoundShot, SoundElimination, SoundPowerUp, SoundGameOver} {
		p.clips[s] = Render(Synthesize(s, SampleRate, volume))
	}
	log.Debug().Int("clips", len(p.clips)).Msg("sound effects synthesized")
	return p
}

// Attach подписывает плеер на события, у которых есть звук
func (p *Player) Attach(d *event.Dispatcher) {
	d.SubscribeAll(p, event.ProjectileFired, event.EnemyEliminated, event.PowerUpCollected, event.GameOver)
}

func (p *Player) OnEvent(e event.Event) {
	if s, ok := SoundFor(e.Type); ok {
		p.Play(s)
	}
}

func (p *Player) Play(s Sound) {
	clip, ok := p.clips[s]
	if !ok || len(clip) == 0 {
		return
	}
	p.ctx.NewPlayerFromBytes(clip).Play()
}
