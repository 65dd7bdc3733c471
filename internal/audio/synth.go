// internal/audio/synth.go
package audio

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate — частота дискретизации всех эффектов
const SampleRate = 44100

// WaveType — форма волны осциллятора
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator генерирует волну с частотой, линейно меняющейся от freq до endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator создаёт осциллятор постоянной частоты
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep создаёт осциллятор со скольжением частоты
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		endFreq:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + (o.endFreq-o.freq)*float64(o.position)/float64(o.duration)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope — линейная атака и затухание
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume — громкость в линейной шкале 0..1, 0 — тишина
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Sound — звуковой эффект игры
type Sound int

const (
	SoundShot Sound = iota
	SoundElimination
	SoundPowerUp
	SoundGameOver
)

// Synthesize собирает поток эффекта s с громкостью volume
func Synthesize(s Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	switch s {
	case SoundShot:
		const d = 60 * time.Millisecond
		osc := NewSweep(1200, 600, d, WaveSquare, rate)
		return newVolume(NewEnvelope(osc, d, 2*time.Millisecond, 40*time.Millisecond, rate), volume*0.3)
	case SoundElimination:
		const d1, d2 = 70 * time.Millisecond, 140 * time.Millisecond
		n1 := NewEnvelope(NewOscillator(659.25, d1, WaveSine, rate), d1, 5*time.Millisecond, 20*time.Millisecond, rate)
		n2 := NewEnvelope(NewOscillator(987.77, d2, WaveSine, rate), d2, 5*time.Millisecond, 100*time.Millisecond, rate)
		return newVolume(beep.Seq(n1, n2), volume)
	case SoundPowerUp:
		const d = 300 * time.Millisecond
		osc := NewSweep(300, 1500, d, WaveSine, rate)
		return newVolume(NewEnvelope(osc, d, 20*time.Millisecond, 80*time.Millisecond, rate), volume)
	case SoundGameOver:
		const d = 500 * time.Millisecond
		tone := NewEnvelope(NewSweep(220, 80, d, WaveSaw, rate), d, 10*time.Millisecond, 300*time.Millisecond, rate)
		noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 5*time.Millisecond, 400*time.Millisecond, rate)
		return newVolume(beep.Mix(newVolume(tone, 0.7), newVolume(noise, 0.15)), volume)
	}
	return nil
}

// Render вычитывает поток целиком в 16-битный стерео PCM little-endian
func Render(s beep.Streamer) []byte {
	if s == nil {
		return nil
	}
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				v := math.Max(-1, math.Min(1, buf[i][ch]))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}
