package parameter

// Extraction
const (
	// ExtractionUnlockTime is elapsed run seconds before the exit zone opens
	ExtractionUnlockTime = 300.0

	// ExtractionChannelTime is the seconds the player must hold inside the
	// zone to extract
	ExtractionChannelTime = 3.0

	// ExtractionZoneRadius is the exit zone radius in cells
	ExtractionZoneRadius = 5.0
)

// Run Rewards
const (
	// ExtractionGoldMultiplier scales run gold on successful extraction
	ExtractionGoldMultiplier = 1.5

	// DeathGoldFraction is the run gold kept when the player dies
	DeathGoldFraction = 0.5
)
