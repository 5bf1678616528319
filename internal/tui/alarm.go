package tui

import (
	"time"

	"reactor-sim/internal/reactor"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const alarmRate = beep.SampleRate(44100)

// Alarm plays a short tone when the hazard tier rises. It stays silent until
// Init succeeds.
type Alarm struct {
	ready bool
}

// Init opens the speaker. A failure leaves the alarm muted.
func (a *Alarm) Init() error {
	if a.ready {
		return nil
	}
	if err := speaker.Init(alarmRate, alarmRate.N(time.Second/10)); err != nil {
		return err
	}
	a.ready = true
	return nil
}

// Sound plays the tone for tier.
func (a *Alarm) Sound(tier reactor.Tier) {
	if a == nil || !a.ready {
		return
	}
	freq := alarmTone(tier)
	if freq <= 0 {
		return
	}
	sine, err := generators.SineTone(alarmRate, freq)
	if err != nil {
		return
	}
	tone := &effects.Volume{Streamer: sine, Base: 2, Volume: -1.5}
	speaker.Play(beep.Take(alarmRate.N(alarmLength(tier)), tone))
}

// Close releases the speaker.
func (a *Alarm) Close() {
	if a == nil || !a.ready {
		return
	}
	speaker.Close()
	a.ready = false
}

// alarmTone maps a hazard tier to a tone frequency in Hz. TierNone is silent.
func alarmTone(tier reactor.Tier) float64 {
	switch tier {
	case reactor.TierFire:
		return 440
	case reactor.TierEvaporate:
		return 660
	case reactor.TierRadiation:
		return 880
	case reactor.TierMeltdown:
		return 1320
	default:
		return 0
	}
}

func alarmLength(tier reactor.Tier) time.Duration {
	if tier == reactor.TierMeltdown {
		return 600 * time.Millisecond
	}
	return 120 * time.Millisecond
}
