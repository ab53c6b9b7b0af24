package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

func uiFace() ebtext.Face {
	return ebtext.NewGoXFace(basicfont.Face7x13)
}

// NewControlUI builds the side panel: one button per view mode plus side,
// pause and copy toggles.
func NewControlUI(g *Game) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x10, G: 0x10, B: 0x10, A: 220})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 255})

	face := g.face
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	button := func(label string, onClick func(b *widget.Button)) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnHover}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(panelWidth-24, 28),
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick(args.Button)
			}),
		)
	}

	title := widget.NewText(
		widget.TextOpts.Text("Grid search", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(panelWidth, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionEnd, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(title)

	for _, m := range []viewMode{modePath, modeReach, modeRange, modeUnits} {
		mode := m
		panel.AddChild(button("Mode: "+mode.String(), func(*widget.Button) { g.setMode(mode) }))
	}
	panel.AddChild(button("Side: "+g.side.String(), func(b *widget.Button) {
		g.toggleSide()
		b.Text().Label = "Side: " + g.side.String()
	}))
	panel.AddChild(button("Pause", func(b *widget.Button) {
		g.scheduler.SetPaused(!g.scheduler.Paused())
		if g.scheduler.Paused() {
			b.Text().Label = "Resume"
		} else {
			b.Text().Label = "Pause"
		}
	}))
	panel.AddChild(button("Copy overlay (C)", func(*widget.Button) { g.copyOverlay() }))

	help := widget.NewText(
		widget.TextOpts.Text("+/- budget & hops\nE new turn  R reload\nSpace pause  N step", &face, color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}),
	)
	panel.AddChild(help)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
