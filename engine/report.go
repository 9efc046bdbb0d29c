package engine

import "glyphstorm/parameter"

// RunReport summarizes a finished run for the summary screen and the
// profile history.
type RunReport struct {
	Survived  float64 // run length in game seconds
	Kills     int
	Level     int
	GoldFound int
	// Extracted is true when the run ended through the extraction zone
	// rather than death.
	Extracted bool
}

// GoldEarned applies the end-of-run multiplier: extraction banks a bonus
// on everything found, death banks only a fraction.
func (r *RunReport) GoldEarned() int {
	if r.Extracted {
		return int(float64(r.GoldFound) * parameter.ExtractionGoldMultiplier)
	}
	return int(float64(r.GoldFound) * parameter.DeathGoldFraction)
}
