package monster

import (
	"github.com/charmbracelet/log"

	"github.com/younwookim/lionheart/internal/application/state"
	"github.com/younwookim/lionheart/internal/domain/entity"
)

// Explode plays its animation once and removes the effect.
type Explode struct{ monsterState }

func (s *Explode) Update(extrp float64) {
	if s.m.IsAnimFinished() {
		s.m.Destroy()
	}
}

// BuildEffect creates the single state machine of a one-shot effect.
func BuildEffect(m *entity.Model, logger *log.Logger) (*state.Handler, error) {
	explode := &Explode{newState(state.Explode, m)}
	h, err := state.NewHandler(m.Kind, logger, explode)
	if err != nil {
		return nil, err
	}
	if err := h.Start(state.Explode); err != nil {
		return nil, err
	}
	return h, nil
}
