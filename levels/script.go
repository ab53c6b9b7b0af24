package levels

import (
	"fmt"
	"math"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// CellInput is what a cost script sees for one cell.
type CellInput struct {
	Glyph  string
	Name   string
	Base   float64
	X      int
	Y      int
	Width  int
	Height int
}

// CostScript is a compiled tengo script that adjusts terrain costs. Scripts
// read terrain, name, base, x, y, width and height, and may assign cost or
// set blocked = true. cost starts out equal to base.
type CostScript struct {
	name     string
	mu       sync.Mutex
	compiled *tengo.Compiled
}

func CompileCostScript(name string, src []byte) (*CostScript, error) {
	script := tengo.NewScript(src)
	_ = script.Add("terrain", "")
	_ = script.Add("name", "")
	_ = script.Add("base", 0.0)
	_ = script.Add("x", 0)
	_ = script.Add("y", 0)
	_ = script.Add("width", 0)
	_ = script.Add("height", 0)
	_ = script.Add("cost", 0.0)
	_ = script.Add("blocked", false)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("levels: compile script %s: %w", name, err)
	}
	return &CostScript{name: name, compiled: compiled}, nil
}

func (s *CostScript) Name() string { return s.name }

// Eval runs the script for one cell and returns the adjusted cost.
func (s *CostScript) Eval(in CellInput) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inputs := []struct {
		name  string
		value any
	}{
		{"terrain", in.Glyph},
		{"name", in.Name},
		{"base", in.Base},
		{"x", in.X},
		{"y", in.Y},
		{"width", in.Width},
		{"height", in.Height},
		{"cost", in.Base},
		{"blocked", false},
	}
	for _, v := range inputs {
		if err := s.compiled.Set(v.name, v.value); err != nil {
			return 0, fmt.Errorf("levels: script %s: set %s: %w", s.name, v.name, err)
		}
	}

	if err := s.compiled.Run(); err != nil {
		return 0, fmt.Errorf("levels: script %s at (%d,%d): %w", s.name, in.X, in.Y, err)
	}

	if s.compiled.Get("blocked").Bool() {
		return math.Inf(1), nil
	}
	cost := s.compiled.Get("cost").Float()
	if math.IsNaN(cost) || math.IsInf(cost, 0) || cost < 1 {
		return 0, fmt.Errorf("%w: script %s returned %v at (%d,%d)", ErrInvalidCost, s.name, cost, in.X, in.Y)
	}
	return cost, nil
}
