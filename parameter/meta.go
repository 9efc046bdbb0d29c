package parameter

// Profile
const (
	// ProfileHistoryCap bounds the stored run history, oldest trimmed
	ProfileHistoryCap = 50
)
