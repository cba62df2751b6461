package drawcli

import (
	"context"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/lo"

	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/pkg/logger"
)

// Roster is a parsed roster file.
type Roster struct {
	// Teams is the default team count, 0 when the file sets none.
	Teams   int
	Players []model.Player
	Absent  int
}

// LoadRoster reads and validates a YAML roster file. Players are numbered
// in file order; absent players are counted but left out. Names need not be
// unique: repeated names stay separate players and are only logged.
func LoadRoster(ctx context.Context, path string) (*Roster, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load roster %s: %w", path, err)
	}

	var entries []rosterEntry
	if err := k.Unmarshal("players", &entries); err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", path, err)
	}

	r := &Roster{Teams: k.Int("teams")}
	for i, e := range entries {
		if e.Absent {
			r.Absent++
			continue
		}
		p := model.Player{
			ID:         fmt.Sprintf("r%d", i+1),
			Name:       e.Name,
			Tier:       model.Tier(e.Tier),
			Goalkeeper: e.Goalkeeper,
			Photo:      e.Photo,
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("roster %s entry %d: %w", path, i+1, err)
		}
		r.Players = append(r.Players, p)
	}

	dupes := lo.FindDuplicatesBy(r.Players, func(p model.Player) string { return p.Name })
	for _, d := range dupes {
		logger.Get().Warn(ctx, "roster lists a name more than once",
			logger.String("file", path),
			logger.String("name", d.Name))
	}
	return r, nil
}
