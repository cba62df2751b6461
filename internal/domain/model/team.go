package model

import "github.com/samber/lo"

// Team is an ordered list of players. Order reflects assignment order, not
// positions on the court.
type Team struct {
	// Number is the 1-based team number shown to players.
	Number  int      `json:"number"`
	Players []Player `json:"players"`
}

// Size returns the number of players on the team.
func (t Team) Size() int { return len(t.Players) }

// TierSum adds up the tiers of every member. With 1 as the strongest tier a
// lower sum means a stronger team.
func (t Team) TierSum() int {
	return lo.SumBy(t.Players, func(p Player) int { return int(p.Tier) })
}

// Goalkeepers returns the members flagged as goalkeepers.
func (t Team) Goalkeepers() []Player {
	return lo.Filter(t.Players, func(p Player, _ int) bool { return p.Goalkeeper })
}

// HasGoalkeeper reports whether any member plays in goal.
func (t Team) HasGoalkeeper() bool {
	return lo.ContainsBy(t.Players, func(p Player) bool { return p.Goalkeeper })
}

// Phantoms counts placeholder members.
func (t Team) Phantoms() int {
	return lo.CountBy(t.Players, func(p Player) bool { return p.Phantom })
}

// TierSpread returns the gap between the weakest and strongest team tier sums.
func TierSpread(teams []Team) int {
	if len(teams) == 0 {
		return 0
	}
	sums := lo.Map(teams, func(t Team, _ int) int { return t.TierSum() })
	return lo.Max(sums) - lo.Min(sums)
}
