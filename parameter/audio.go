package parameter

import "time"

// Mixer
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// SpeakerBufferLength is the speaker ring buffer size. Larger values
	// survive scheduling hiccups at the cost of latency
	SpeakerBufferLength = 100 * time.Millisecond

	// MaxSimultaneousSounds caps concurrent effect streamers. Requests
	// beyond the cap are dropped and counted, never queued
	MaxSimultaneousSounds = 8

	// DefaultVolume is the effect volume before options override, 0..1
	DefaultVolume = 0.7
)

// Effect timing. One block per synthesized sound
const (
	ShootSoundDuration = 45 * time.Millisecond
	ShootSoundAttack   = 2 * time.Millisecond
	ShootSoundRelease  = 30 * time.Millisecond

	HitSoundDuration = 50 * time.Millisecond
	HitSoundAttack   = 2 * time.Millisecond
	HitSoundRelease  = 35 * time.Millisecond

	KillSoundDuration = 140 * time.Millisecond
	KillSoundAttack   = 5 * time.Millisecond
	KillSoundRelease  = 90 * time.Millisecond

	PickupSoundDuration = 90 * time.Millisecond
	PickupSoundAttack   = 3 * time.Millisecond
	PickupSoundRelease  = 60 * time.Millisecond

	LevelUpSoundNoteDuration = 120 * time.Millisecond
	LevelUpSoundAttack       = 5 * time.Millisecond
	LevelUpSoundRelease      = 70 * time.Millisecond

	HurtSoundDuration = 180 * time.Millisecond
	HurtSoundAttack   = 5 * time.Millisecond
	HurtSoundRelease  = 120 * time.Millisecond

	ExplosionSoundDuration = 280 * time.Millisecond
	ExplosionSoundAttack   = 4 * time.Millisecond
	ExplosionSoundRelease  = 220 * time.Millisecond

	MinePlaceSoundDuration = 50 * time.Millisecond
	MinePlaceSoundAttack   = 2 * time.Millisecond
	MinePlaceSoundRelease  = 30 * time.Millisecond

	ExtractionSoundNoteDuration = 160 * time.Millisecond
	ExtractionSoundAttack       = 5 * time.Millisecond
	ExtractionSoundRelease      = 100 * time.Millisecond

	GameOverSoundDuration = 600 * time.Millisecond
	GameOverSoundAttack   = 10 * time.Millisecond
	GameOverSoundRelease  = 400 * time.Millisecond

	UIMoveSoundDuration = 30 * time.Millisecond
	UIMoveSoundAttack   = 2 * time.Millisecond
	UIMoveSoundRelease  = 20 * time.Millisecond

	UISelectSoundDuration = 70 * time.Millisecond
	UISelectSoundAttack   = 3 * time.Millisecond
	UISelectSoundRelease  = 45 * time.Millisecond
)
