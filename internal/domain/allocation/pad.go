package allocation

import (
	"fmt"

	"github.com/okian/lineup/internal/domain/model"
)

// Pad checks the selected players against numTeams*teamSize and returns a
// copy of exactly that many players, appending tier-3 placeholders when up
// to teamSize-1 are missing. The second return value is the number of
// placeholders added. players is never modified.
func Pad(players []model.Player, numTeams, teamSize int, prefix string) ([]model.Player, int, error) {
	if len(players) == 0 {
		return nil, 0, ErrNoPlayers
	}
	if numTeams < 2 {
		return nil, 0, fmt.Errorf("%w: got %d", ErrInvalidTeamCount, numTeams)
	}

	selected := len(players)
	required := numTeams * teamSize

	if selected > required {
		return nil, 0, &SurplusError{
			Selected:   selected,
			Capacity:   required,
			ExtraTeams: ceilDiv(selected-required, teamSize),
		}
	}

	missing := required - selected
	if missing > teamSize-1 {
		return nil, 0, &InsufficientPlayersError{
			Selected:   selected,
			Required:   required,
			Missing:    missing,
			ExtraTeams: ceilDiv(missing, teamSize),
			MaxTeams:   ceilDiv(selected, teamSize),
		}
	}

	padded := make([]model.Player, 0, required)
	padded = append(padded, players...)
	for i := 0; i < missing; i++ {
		padded = append(padded, Phantom(prefix, i+1))
	}
	return padded, missing, nil
}

// Phantom builds the n-th placeholder player.
func Phantom(prefix string, n int) model.Player {
	return model.Player{
		ID:      fmt.Sprintf("phantom-%d", n),
		Name:    fmt.Sprintf("%s %d", prefix, n),
		Tier:    model.TierWeak,
		Phantom: true,
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
