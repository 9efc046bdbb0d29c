package content

// WaveBracket configures burst spawning for one stretch of the run.
// Brackets are selected by elapsed time against ascending Until bounds
type WaveBracket struct {
	Until    float64 // Upper elapsed-time bound in seconds
	Interval float64 // Seconds between waves
	Size     int     // Enemies per wave
	MinEdges int     // Fewest viewport edges used per wave
	MaxEdges int     // Most viewport edges used per wave
}

// WaveBrackets escalates pressure over the run. The final bracket holds
// for the rest of the run regardless of elapsed time
var WaveBrackets = []WaveBracket{
	{Until: 60, Interval: 9, Size: 6, MinEdges: 1, MaxEdges: 1},
	{Until: 150, Interval: 8, Size: 10, MinEdges: 1, MaxEdges: 2},
	{Until: 270, Interval: 7, Size: 16, MinEdges: 2, MaxEdges: 3},
	{Until: 420, Interval: 6, Size: 24, MinEdges: 2, MaxEdges: 4},
	{Until: 0, Interval: 5, Size: 32, MinEdges: 3, MaxEdges: 4},
}

// BracketFor returns the wave configuration active at elapsed seconds
func BracketFor(elapsed float64) WaveBracket {
	for _, b := range WaveBrackets {
		if b.Until > 0 && elapsed < b.Until {
			return b
		}
	}
	return WaveBrackets[len(WaveBrackets)-1]
}
