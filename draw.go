package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/gridtactics/common"
	"github.com/milk9111/gridtactics/ecs"
	"github.com/milk9111/gridtactics/ecs/component"
	"github.com/milk9111/gridtactics/levels"
	"github.com/milk9111/gridtactics/search"
	"golang.org/x/image/colornames"
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	if g.level == nil {
		return
	}
	ts := float32(g.tileSize())

	for y := 0; y < g.level.Height(); y++ {
		for x := 0; x < g.level.Width(); x++ {
			clr := tileColor(g.level.MovementCost(x, y), g.level.Diggable(x, y))
			vector.FillRect(screen, float32(x)*ts, float32(y)*ts, ts-1, ts-1, clr, false)
		}
	}

	o := g.overlay
	for _, c := range o.Visited {
		fillCell(screen, c, ts, 0, withAlpha(colornames.Lightsteelblue, 60))
	}
	for c := range o.Reach {
		fillCell(screen, c, ts, 0, withAlpha(colornames.Cornflowerblue, 110))
	}
	for _, c := range o.Range.Coords() {
		fillCell(screen, c, ts, 0, withAlpha(colornames.Orangered, 110))
	}
	g.drawPath(screen, o.Path, ts)

	ecs.ForEach(g.world, component.DigJobComponent.Kind(), func(_ ecs.Entity, job *component.DigJob) {
		strokeCell(screen, job.Cell, ts, colornames.Yellow)
	})
	if g.mode != modeUnits {
		if g.hasStart {
			strokeCell(screen, g.start, ts, colornames.Lime)
		}
		if g.hasGoal && g.mode == modePath {
			strokeCell(screen, g.goal, ts, colornames.Red)
		}
	}
	g.drawUnits(screen, ts)

	status := fmt.Sprintf("%s | %s | budget %g hops %d side %s", g.level.Name(), g.mode, g.budget, g.hops, g.side)
	if g.summary != "" {
		status += " | " + g.summary
	}
	if g.status != "" {
		status += " | " + g.status
	}
	if g.debug {
		status += fmt.Sprintf(" | FPS %.1f", ebiten.ActualFPS())
	}
	ebitenutil.DebugPrintAt(screen, status, 4, baseHeight-16)

	g.ui.Draw(screen)
}

func (g *Game) drawPath(screen *ebiten.Image, path search.Path, ts float32) {
	for i, c := range path {
		fillCell(screen, c, ts, ts/3, colornames.Gold)
		if i == 0 {
			continue
		}
		px, py := cellCenter(path[i-1], ts)
		cx, cy := cellCenter(c, ts)
		vector.StrokeLine(screen, px, py, cx, cy, 2, colornames.Gold, true)
	}
}

func (g *Game) drawUnits(screen *ebiten.Image, ts float32) {
	ecs.ForEach3(g.world, component.UnitComponent.Kind(), component.GridPositionComponent.Kind(), component.FactionComponent.Kind(), func(e ecs.Entity, u *component.Unit, pos *component.GridPosition, f *component.Faction) {
		cx, cy := cellCenter(pos.At, ts)
		clr := colornames.Royalblue
		if f.Side == search.Hostile {
			clr = colornames.Crimson
		}
		vector.FillCircle(screen, cx, cy, ts*0.35, clr, true)
		if e == g.selected {
			vector.StrokeCircle(screen, cx, cy, ts*0.42, 2, colornames.White, true)
		}
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(float64(cx)-3.5, float64(cy)-6.5)
		op.ColorScale.ScaleWithColor(colornames.White)
		ebtext.Draw(screen, string(levels.UnitGlyph(u.Name, f.Side)), g.face, op)
	})
}

func fillCell(screen *ebiten.Image, c search.Coord, ts, inset float32, clr color.Color) {
	vector.FillRect(screen, float32(c.X)*ts+inset, float32(c.Y)*ts+inset, ts-1-2*inset, ts-1-2*inset, clr, false)
}

func strokeCell(screen *ebiten.Image, c search.Coord, ts float32, clr color.Color) {
	vector.StrokeRect(screen, float32(c.X)*ts+1, float32(c.Y)*ts+1, ts-3, ts-3, 2, clr, false)
}

func cellCenter(c search.Coord, ts float32) (float32, float32) {
	return float32(c.X)*ts + ts/2, float32(c.Y)*ts + ts/2
}

// tileColor shades passable terrain from light (cost 1) to dark (cost 4 and
// up). Diggable walls get their own color.
func tileColor(cost float64, diggable bool) color.Color {
	if !search.Passable(cost) {
		if diggable {
			return colornames.Saddlebrown
		}
		return colornames.Dimgray
	}
	return lerpColor(colornames.Darkseagreen, colornames.Darkolivegreen, float32(cost-1)/3)
}

func lerpColor(a, b color.RGBA, t float32) color.RGBA {
	return color.RGBA{
		R: common.LerpByte(a.R, b.R, t),
		G: common.LerpByte(a.G, b.G, t),
		B: common.LerpByte(a.B, b.B, t),
		A: 0xff,
	}
}

func withAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}
