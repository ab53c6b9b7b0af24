package system

import (
	"github.com/milk9111/gridtactics/ecs"
	"github.com/milk9111/gridtactics/ecs/component"
	"github.com/milk9111/gridtactics/levels"
)

func levelOf(w *ecs.World) (*levels.Level, bool) {
	e, ok := ecs.First(w, component.LevelMapComponent.Kind())
	if !ok {
		return nil, false
	}
	lm, ok := ecs.Get(w, e, component.LevelMapComponent.Kind())
	if !ok || lm.Level == nil {
		return nil, false
	}
	return lm.Level, true
}
