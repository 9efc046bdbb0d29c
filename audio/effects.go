package audio

import (
	"github.com/gopxl/beep"

	"glyphstorm/event"
	"glyphstorm/parameter"
)

// Sound effect generators. Every effect is synthesized, no asset files.
// Each constructor returns a finite streamer the mixer drains and drops

// createShootSound is a tiny square blip, pitched high to sit under the
// rest of the mix even when firing every frame
func createShootSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewSweep(900, 700, parameter.ShootSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.ShootSoundDuration, parameter.ShootSoundAttack, parameter.ShootSoundRelease, rate)
	return newVolume(shaped, vol*0.35)
}

// createHitSound is a dull sine tap
func createHitSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(220, parameter.HitSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.HitSoundDuration, parameter.HitSoundAttack, parameter.HitSoundRelease, rate)
	return newVolume(shaped, vol*0.5)
}

// createKillSound is a saw sweep falling an octave
func createKillSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewSweep(440, 110, parameter.KillSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.KillSoundDuration, parameter.KillSoundAttack, parameter.KillSoundRelease, rate)
	return newVolume(shaped, vol*0.6)
}

// createPickupSound is a bright bell: fundamental plus one overtone
func createPickupSound(rate beep.SampleRate, vol float64) beep.Streamer {
	fund := NewOscillator(880, parameter.PickupSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.PickupSoundDuration, parameter.PickupSoundAttack, parameter.PickupSoundRelease, rate)

	over := NewOscillator(1760, parameter.PickupSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.PickupSoundDuration, parameter.PickupSoundAttack, parameter.PickupSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, vol*0.5)
}

// createLevelUpSound is a rising three-note arpeggio
func createLevelUpSound(rate beep.SampleRate, vol float64) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		osc := NewOscillator(freq, parameter.LevelUpSoundNoteDuration, WaveSquare, rate)
		return NewEnvelope(osc, parameter.LevelUpSoundNoteDuration, parameter.LevelUpSoundAttack, parameter.LevelUpSoundRelease, rate)
	}
	sequence := beep.Seq(note(523.25), note(659.25), note(783.99))
	return newVolume(sequence, vol*0.7)
}

// createHurtSound is a harsh low buzz
func createHurtSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(110, parameter.HurtSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.HurtSoundDuration, parameter.HurtSoundAttack, parameter.HurtSoundRelease, rate)
	return newVolume(shaped, vol*0.8)
}

// createExplosionSound is noise with a long release
func createExplosionSound(rate beep.SampleRate, vol float64) beep.Streamer {
	noise := NewOscillator(0, parameter.ExplosionSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.ExplosionSoundDuration, parameter.ExplosionSoundAttack, parameter.ExplosionSoundRelease, rate)
	return newVolume(shaped, vol*0.7)
}

// createMinePlaceSound is a low click
func createMinePlaceSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(330, parameter.MinePlaceSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.MinePlaceSoundDuration, parameter.MinePlaceSoundAttack, parameter.MinePlaceSoundRelease, rate)
	return newVolume(shaped, vol*0.4)
}

// createExtractionSound is a two-note victory chime
func createExtractionSound(rate beep.SampleRate, vol float64) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		osc := NewOscillator(freq, parameter.ExtractionSoundNoteDuration, WaveSine, rate)
		return NewEnvelope(osc, parameter.ExtractionSoundNoteDuration, parameter.ExtractionSoundAttack, parameter.ExtractionSoundRelease, rate)
	}
	sequence := beep.Seq(note(987.77), note(1318.51))
	return newVolume(sequence, vol*0.8)
}

// createGameOverSound is a long fall to silence
func createGameOverSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewSweep(330, 55, parameter.GameOverSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.GameOverSoundDuration, parameter.GameOverSoundAttack, parameter.GameOverSoundRelease, rate)
	return newVolume(shaped, vol*0.8)
}

// createUIMoveSound is a faint tick
func createUIMoveSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(660, parameter.UIMoveSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.UIMoveSoundDuration, parameter.UIMoveSoundAttack, parameter.UIMoveSoundRelease, rate)
	return newVolume(shaped, vol*0.3)
}

// createUISelectSound is a firmer confirmation tick
func createUISelectSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(880, parameter.UISelectSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.UISelectSoundDuration, parameter.UISelectSoundAttack, parameter.UISelectSoundRelease, rate)
	return newVolume(shaped, vol*0.4)
}

// makeEffect returns the streamer for a sound id, or nil for unknown ids
func makeEffect(id event.SoundID, rate beep.SampleRate, vol float64) beep.Streamer {
	switch id {
	case event.SoundShoot:
		return createShootSound(rate, vol)
	case event.SoundHit:
		return createHitSound(rate, vol)
	case event.SoundKill:
		return createKillSound(rate, vol)
	case event.SoundPickup:
		return createPickupSound(rate, vol)
	case event.SoundLevelUp:
		return createLevelUpSound(rate, vol)
	case event.SoundPlayerHurt:
		return createHurtSound(rate, vol)
	case event.SoundExplosion:
		return createExplosionSound(rate, vol)
	case event.SoundMinePlace:
		return createMinePlaceSound(rate, vol)
	case event.SoundExtraction:
		return createExtractionSound(rate, vol)
	case event.SoundGameOver:
		return createGameOverSound(rate, vol)
	case event.SoundUIMove:
		return createUIMoveSound(rate, vol)
	case event.SoundUISelect:
		return createUISelectSound(rate, vol)
	default:
		return nil
	}
}
