package allocation

import (
	"math/rand"

	"github.com/okian/lineup/internal/domain/model"
)

// minAnchoredSize is the team size below which the minimum pass hands out a
// strong player: the goalkeeper plus one outfield anchor.
const minAnchoredSize = 2

// draw holds the working state of a single allocation. Teams and pools
// store player positions; players is the padded copy owned by the draw.
type draw struct {
	players  []model.Player
	pools    Pools
	teams    [][]int
	sums     []int
	used     []bool
	phantoms []int
	teamSize int
	rng      *rand.Rand

	promoted      int
	withoutKeeper int
	spareKeepers  []int
}

func newDraw(players []model.Player, numTeams, teamSize int, rng *rand.Rand) *draw {
	d := &draw{
		players:  players,
		pools:    Categorize(players),
		teams:    make([][]int, numTeams),
		sums:     make([]int, numTeams),
		used:     make([]bool, len(players)),
		teamSize: teamSize,
		rng:      rng,
	}
	for i, p := range players {
		if p.Phantom {
			d.phantoms = append(d.phantoms, i)
		}
	}
	return d
}

func (d *draw) assign(team, idx int) {
	d.teams[team] = append(d.teams[team], idx)
	d.sums[team] += int(d.players[idx].Tier)
	d.used[idx] = true
}

// shuffled returns a shuffled copy of pool.
func (d *draw) shuffled(pool []int) []int {
	out := append([]int(nil), pool...)
	d.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// nextPhantom returns the first placeholder not yet on a team.
func (d *draw) nextPhantom() (int, bool) {
	for _, idx := range d.phantoms {
		if !d.used[idx] {
			return idx, true
		}
	}
	return 0, false
}

// goalkeepers gives every team one shuffled goalkeeper while they last, then
// promotes unused placeholders. Keepers beyond one per team are kept aside
// for the greedy pass.
func (d *draw) goalkeepers() {
	keepers := d.shuffled(d.pools.Goalkeepers)
	next := 0
	for t := range d.teams {
		if next < len(keepers) {
			d.assign(t, keepers[next])
			next++
			continue
		}
		idx, ok := d.nextPhantom()
		if !ok {
			d.withoutKeeper++
			continue
		}
		d.players[idx].Goalkeeper = true
		d.assign(t, idx)
		d.promoted++
	}
	d.spareKeepers = keepers[next:]
}

// minimum hands each team below minAnchoredSize the next tier-1 player, or
// a tier-2 player once tier 1 runs dry. Pools drain from the head in input
// order.
func (d *draw) minimum() {
	t1, t2 := 0, 0
	for t := range d.teams {
		if len(d.teams[t]) >= minAnchoredSize {
			continue
		}
		switch {
		case t1 < len(d.pools.Tier1):
			d.assign(t, d.pools.Tier1[t1])
			t1++
		case t2 < len(d.pools.Tier2):
			d.assign(t, d.pools.Tier2[t2])
			t2++
		}
	}
}

// greedy shuffles pool and places each unused player on the open team with
// the fewest members, then the lowest tier sum, then the lowest number.
func (d *draw) greedy(pool []int) {
	for _, idx := range d.shuffled(pool) {
		if d.used[idx] {
			continue
		}
		if t, ok := d.pickTeam(); ok {
			d.assign(t, idx)
		}
	}
}

func (d *draw) pickTeam() (int, bool) {
	best := -1
	for t := range d.teams {
		if len(d.teams[t]) >= d.teamSize {
			continue
		}
		if best < 0 ||
			len(d.teams[t]) < len(d.teams[best]) ||
			(len(d.teams[t]) == len(d.teams[best]) && d.sums[t] < d.sums[best]) {
			best = t
		}
	}
	return best, best >= 0
}

// complete tops up short teams with any placeholders still unused.
func (d *draw) complete() {
	for t := range d.teams {
		for len(d.teams[t]) < d.teamSize {
			idx, ok := d.nextPhantom()
			if !ok {
				return
			}
			d.assign(t, idx)
		}
	}
}

// result materializes the teams as player values.
func (d *draw) result() ([]model.Team, error) {
	teams := make([]model.Team, len(d.teams))
	for t, members := range d.teams {
		if len(members) != d.teamSize {
			return nil, ErrIncompleteTeams
		}
		players := make([]model.Player, len(members))
		for i, idx := range members {
			players[i] = d.players[idx]
		}
		teams[t] = model.Team{Number: t + 1, Players: players}
	}
	return teams, nil
}
