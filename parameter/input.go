package parameter

// Input
const (
	// InputHoldSeconds is how long a movement key press stays active
	// without a refresh. Terminals deliver no key-release events, so a
	// held key is observed as the initial press plus auto-repeat; the
	// window must outlast the keyboard's repeat delay or movement
	// stutters between the first press and the first repeat
	InputHoldSeconds = 0.55
)
