package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/gridtactics/ecs"
	"github.com/milk9111/gridtactics/ecs/component"
	"github.com/milk9111/gridtactics/levels"
	"github.com/milk9111/gridtactics/search"
)

var ErrNoGoal = errors.New("entity: creep needs a goal but the level has none")

const (
	defaultRepathFrames = 30
	defaultStepFrames   = 8
)

// LoadLevelToWorld creates the level entity and one entity per unit placed by
// the level file. The returned slice holds the units in file order.
func LoadLevelToWorld(world *ecs.World, lvl *levels.Level) ([]ecs.Entity, error) {
	if lvl == nil {
		return nil, errors.New("entity: load level: nil level")
	}
	levelEntity := ecs.CreateEntity(world)
	if err := ecs.Add(world, levelEntity, component.LevelMapComponent.Kind(), &component.LevelMap{Level: lvl}); err != nil {
		return nil, fmt.Errorf("entity: load level %s: %w", lvl.Name(), err)
	}

	units := lvl.Units()
	out := make([]ecs.Entity, 0, len(units))
	for _, u := range units {
		e, err := BuildUnit(world, lvl, u)
		if err != nil {
			return nil, fmt.Errorf("entity: load level %s: unit %s: %w", lvl.Name(), u.Name, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// BuildUnit creates an entity for u with the components its role needs.
func BuildUnit(world *ecs.World, lvl *levels.Level, u levels.Unit) (ecs.Entity, error) {
	e := ecs.CreateEntity(world)
	if err := ecs.Add(world, e, component.UnitComponent.Kind(), &component.Unit{Name: u.Name}); err != nil {
		return e, err
	}
	if err := ecs.Add(world, e, component.GridPositionComponent.Kind(), &component.GridPosition{At: u.At}); err != nil {
		return e, err
	}
	if err := ecs.Add(world, e, component.FactionComponent.Kind(), &component.Faction{Side: u.Side}); err != nil {
		return e, err
	}

	switch u.Role {
	case levels.RoleCreep:
		goal, ok := nearestGoal(lvl.Goals(), u.At)
		if !ok {
			return e, ErrNoGoal
		}
		return e, ecs.Add(world, e, component.PathFollowerComponent.Kind(), &component.PathFollower{
			Goal:         goal,
			RepathFrames: defaultRepathFrames,
			StepFrames:   defaultStepFrames,
		})
	case levels.RoleMinion:
		return e, ecs.Add(world, e, component.MinionComponent.Kind(), &component.Minion{})
	}

	if u.Move > 0 {
		if err := ecs.Add(world, e, component.MoverComponent.Kind(), &component.Mover{Budget: u.Move, Remaining: u.Move}); err != nil {
			return e, err
		}
	}
	if u.Reach > 0 {
		if err := ecs.Add(world, e, component.AttackReachComponent.Kind(), &component.AttackReach{Hops: u.Reach}); err != nil {
			return e, err
		}
	}
	return e, nil
}

// AddDigJob queues cell for digging.
func AddDigJob(world *ecs.World, cell search.Coord) (ecs.Entity, error) {
	e := ecs.CreateEntity(world)
	if err := ecs.Add(world, e, component.DigJobComponent.Kind(), &component.DigJob{Cell: cell}); err != nil {
		return e, fmt.Errorf("entity: dig job %s: %w", cell, err)
	}
	return e, nil
}

func nearestGoal(goals []search.Coord, from search.Coord) (search.Coord, bool) {
	if len(goals) == 0 {
		return search.Coord{}, false
	}
	best := goals[0]
	for _, g := range goals[1:] {
		if search.Manhattan(from, g) < search.Manhattan(from, best) {
			best = g
		}
	}
	return best, true
}
