package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/gridtactics/ecs"
	"github.com/milk9111/gridtactics/ecs/component"
	"github.com/milk9111/gridtactics/ecs/entity"
	"github.com/milk9111/gridtactics/ecs/system"
	"github.com/milk9111/gridtactics/levels"
	"github.com/milk9111/gridtactics/search"
	"golang.design/x/clipboard"
)

const (
	baseWidth  = 1280
	baseHeight = 720
	panelWidth = 220
	maxTile    = 48
)

type viewMode int

const (
	modePath viewMode = iota
	modeReach
	modeRange
	modeUnits
)

func (m viewMode) String() string {
	switch m {
	case modePath:
		return "path"
	case modeReach:
		return "reach"
	case modeRange:
		return "range"
	default:
		return "units"
	}
}

type Game struct {
	frames int
	debug  bool

	levelName string
	level     *levels.Level
	world     *ecs.World
	scheduler *ecs.Scheduler
	watcher   *levels.Watcher

	mode     viewMode
	side     search.Side
	start    search.Coord
	goal     search.Coord
	hasStart bool
	hasGoal  bool
	budget   float64
	hops     int
	selected ecs.Entity

	overlay levels.Overlay
	summary string
	status  string

	clipboardOK bool
	ui          *ebitenui.UI
	face        ebtext.Face
}

func NewGame(levelName string, debug bool) (*Game, error) {
	g := &Game{
		levelName: levelName,
		debug:     debug,
		budget:    5,
		hops:      2,
	}
	if err := g.load(); err != nil {
		return nil, err
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("viewer: clipboard unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}

	if w, err := levels.NewWatcher(levels.WatchDirs(levelName)...); err != nil {
		log.Printf("viewer: hot reload disabled: %v", err)
	} else {
		g.watcher = w
	}

	g.face = uiFace()
	g.ui = NewControlUI(g)
	g.recompute()
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// load (re)reads the level and rebuilds the world around it.
func (g *Game) load() error {
	lvl, err := levels.Open(g.levelName)
	if err != nil {
		return err
	}
	world := ecs.NewWorld()
	if _, err := entity.LoadLevelToWorld(world, lvl); err != nil {
		return err
	}

	g.level = lvl
	g.world = world
	paused := g.scheduler != nil && g.scheduler.Paused()
	g.scheduler = ecs.NewScheduler(
		system.NewMoveOrderSystem(),
		system.NewMovementRangeSystem(),
		system.NewAttackRangeSystem(),
		system.NewPathfindingSystem(),
		system.NewMinionSchedulerSystem(),
	)
	g.scheduler.SetPaused(paused)
	g.selected = 0
	if !inBounds(lvl, g.start) {
		g.hasStart = false
	}
	if !inBounds(lvl, g.goal) {
		g.hasGoal = false
	}
	return nil
}

func (g *Game) Update() error {
	g.frames++

	g.pollWatcher()
	g.ui.Update()
	g.handleKeys()
	g.handleMouse()

	if g.scheduler.Update(g.world) {
		for _, evt := range g.world.Events().Drain() {
			g.status = describeEvent(evt)
			if g.debug {
				log.Printf("viewer: %s", g.status)
			}
		}
	}
	g.recompute()
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case name, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		if err := g.load(); err != nil {
			g.status = fmt.Sprintf("reload %s failed: %v", filepath.Base(name), err)
			log.Printf("viewer: %s", g.status)
			return
		}
		g.status = fmt.Sprintf("reloaded %s", filepath.Base(name))
	case err := <-g.watcher.Errors:
		if err != nil {
			log.Printf("viewer: watch: %v", err)
		}
	default:
	}
}

func (g *Game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		g.budget++
		g.hops++
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		if g.budget > 0 {
			g.budget--
		}
		if g.hops > 0 {
			g.hops--
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyOverlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.scheduler.SetPaused(!g.scheduler.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.scheduler.Paused() {
		g.scheduler.Step(g.world)
		g.status = fmt.Sprintf("tick %d", g.scheduler.Ticks())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		system.ResetMovers(g.world)
		g.status = "new turn"
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.load(); err != nil {
			g.status = err.Error()
		}
	}
}

func (g *Game) handleMouse() {
	left := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	right := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	cell, ok := g.cellAt(ebiten.CursorPosition())
	if !ok {
		return
	}

	if g.mode == modeUnits {
		if left {
			g.selectOrDig(cell)
		} else {
			g.orderMove(cell)
		}
		return
	}
	if left {
		g.start, g.hasStart = cell, true
	} else {
		g.goal, g.hasGoal = cell, true
	}
}

func (g *Game) selectOrDig(cell search.Coord) {
	occ := system.NewOccupancyIndex(g.world)
	if e, ok := occ.At(cell); ok {
		if g.selected.Valid() {
			ecs.Remove(g.world, g.selected, component.SelectedComponent.Kind())
		}
		g.selected = e
		if err := ecs.Add(g.world, e, component.SelectedComponent.Kind(), &component.Selected{}); err != nil {
			log.Printf("viewer: select: %v", err)
		}
		return
	}
	if g.level.Diggable(cell.X, cell.Y) {
		if _, err := entity.AddDigJob(g.world, cell); err != nil {
			log.Printf("viewer: %v", err)
			return
		}
		g.status = fmt.Sprintf("dig queued at %s", cell)
	}
}

func (g *Game) orderMove(cell search.Coord) {
	if !ecs.IsAlive(g.world, g.selected) {
		return
	}
	if err := ecs.Add(g.world, g.selected, component.MoveOrderComponent.Kind(), &component.MoveOrder{To: cell}); err != nil {
		log.Printf("viewer: move order: %v", err)
	}
}

// recompute rebuilds the overlay for the current mode.
func (g *Game) recompute() {
	o := levels.Overlay{Marks: unitMarks(g.world)}
	g.summary = ""

	switch g.mode {
	case modePath:
		if !g.hasStart || !g.hasGoal {
			g.summary = "left click: start, right click: goal"
			break
		}
		path, visited, ok := search.TracePath(g.level, g.start, g.goal)
		if g.debug {
			o.Visited = visited
		}
		if !ok {
			g.summary = fmt.Sprintf("no path (expanded %d)", len(visited))
			break
		}
		o.Path = path
		g.summary = fmt.Sprintf("cost %g, %d steps, expanded %d", path.Cost(g.level), max(len(path)-1, 0), len(visited))
	case modeReach:
		if !g.hasStart {
			g.summary = "left click: origin"
			break
		}
		o.Reach = search.ReachableArea(g.level, g.start, g.budget)
		g.summary = fmt.Sprintf("budget %g: %d cells", g.budget, o.Reach.Len())
	case modeRange:
		if !g.hasStart {
			g.summary = "left click: origin"
			break
		}
		o.Range = search.ComputeRange(g.level, system.NewOccupancyIndex(g.world), g.start, g.hops, g.side)
		g.summary = fmt.Sprintf("%s hops %d: %d cells", g.side, g.hops, o.Range.Len())
	case modeUnits:
		g.unitsOverlay(&o)
	}
	g.overlay = o
}

func (g *Game) unitsOverlay(o *levels.Overlay) {
	if ecs.IsAlive(g.world, g.selected) {
		if mr, ok := ecs.Get(g.world, g.selected, component.MovementRangeComponent.Kind()); ok {
			o.Reach = mr.Cells
		}
		if ar, ok := ecs.Get(g.world, g.selected, component.AttackReachComponent.Kind()); ok {
			o.Range = ar.Cells
		}
		if m, ok := ecs.Get(g.world, g.selected, component.MoverComponent.Kind()); ok {
			g.summary = fmt.Sprintf("move left %g/%g", m.Remaining, m.Budget)
		}
	} else {
		g.summary = "left click: select / dig, right click: move"
	}
	ecs.ForEach(g.world, component.PathFollowerComponent.Kind(), func(_ ecs.Entity, pf *component.PathFollower) {
		if o.Path == nil {
			o.Path = pf.Remaining()
		}
	})
}

func (g *Game) copyOverlay() {
	if !g.clipboardOK {
		g.status = "clipboard unavailable"
		return
	}
	text := levels.Render(g.level, g.overlay) + g.summary + "\n"
	clipboard.Write(clipboard.FmtText, []byte(text))
	g.status = "overlay copied"
}

func (g *Game) setMode(m viewMode) {
	g.mode = m
	g.status = "mode " + m.String()
}

func (g *Game) toggleSide() {
	g.side = g.side.Opponent()
}

func (g *Game) tileSize() int {
	if g.level == nil {
		return maxTile
	}
	size := min((baseWidth-panelWidth)/g.level.Width(), (baseHeight-20)/g.level.Height())
	return max(min(size, maxTile), 4)
}

func (g *Game) cellAt(x, y int) (search.Coord, bool) {
	ts := g.tileSize()
	if x < 0 || y < 0 {
		return search.Coord{}, false
	}
	c := search.C(x/ts, y/ts)
	return c, inBounds(g.level, c)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func inBounds(l *levels.Level, c search.Coord) bool {
	return l != nil && c.X >= 0 && c.Y >= 0 && c.X < l.Width() && c.Y < l.Height()
}

// unitMarks places every unit's glyph at its live position: upper case for
// friendly units, lower case for hostile ones.
func unitMarks(w *ecs.World) map[search.Coord]byte {
	marks := make(map[search.Coord]byte)
	ecs.ForEach3(w, component.UnitComponent.Kind(), component.GridPositionComponent.Kind(), component.FactionComponent.Kind(), func(_ ecs.Entity, u *component.Unit, pos *component.GridPosition, f *component.Faction) {
		marks[pos.At] = levels.UnitGlyph(u.Name, f.Side)
	})
	return marks
}

func describeEvent(evt ecs.Event) string {
	switch d := evt.Data.(type) {
	case ecs.UnitMoved:
		return fmt.Sprintf("unit %d moved %s -> %s for %g", d.Entity, d.From, d.To, d.Cost)
	case ecs.MoveRejected:
		return fmt.Sprintf("move to %s rejected: %s", d.To, d.Reason)
	case ecs.GoalReached:
		return fmt.Sprintf("unit %d reached %s", d.Entity, d.Goal)
	case ecs.CellDug:
		return fmt.Sprintf("minion %d dug %s", d.Entity, d.Cell)
	}
	return evt.Type
}
