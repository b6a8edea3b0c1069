package snake

import "fmt"

// Mode represents the game mode.
type Mode string

const (
	ModeClassic   Mode = "classic"
	ModeChallenge Mode = "challenge"
	ModeTimed     Mode = "timed"
)

// Modes returns every mode in menu order.
func Modes() []Mode {
	return []Mode{ModeClassic, ModeChallenge, ModeTimed}
}

// ParseMode converts a CLI or storage value into a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q (want classic, challenge or timed)", s)
}

// Title returns the display name.
func (m Mode) Title() string {
	switch m {
	case ModeChallenge:
		return "Challenge"
	case ModeTimed:
		return "Timed"
	default:
		return "Classic"
	}
}

// Description returns a one-line summary for menus and `snake modes`.
func (m Mode) Description() string {
	switch m {
	case ModeChallenge:
		return "More obstacles, faster speed-up, more special food"
	case ModeTimed:
		return "Score as much as you can in 60 seconds"
	default:
		return "Eat to grow and speed up"
	}
}

// speedsUp reports whether eating lowers the base interval in this mode.
func (m Mode) speedsUp() bool {
	return m == ModeClassic || m == ModeChallenge
}
