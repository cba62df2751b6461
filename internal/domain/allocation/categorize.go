package allocation

import (
	"github.com/okian/lineup/internal/domain/model"
)

// Pools partitions players by role and tier. Entries are positions in the
// slice handed to Categorize; that position is the player's identity for
// the rest of the draw, so duplicate names never collide.
type Pools struct {
	Goalkeepers []int
	Tier1       []int
	Tier2       []int
	Tier3       []int
}

// Categorize splits players into goalkeepers and the three outfield tiers.
// Goalkeepers are pooled regardless of tier. Input order is preserved.
func Categorize(players []model.Player) Pools {
	var p Pools
	for i, pl := range players {
		switch {
		case pl.Goalkeeper:
			p.Goalkeepers = append(p.Goalkeepers, i)
		case pl.Tier == model.TierStrong:
			p.Tier1 = append(p.Tier1, i)
		case pl.Tier == model.TierAverage:
			p.Tier2 = append(p.Tier2, i)
		default:
			p.Tier3 = append(p.Tier3, i)
		}
	}
	return p
}
