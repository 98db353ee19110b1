// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenview

import (
	"github.com/gogpu/ggline"
	"github.com/gogpu/ggline/view"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game is an ebiten.Game that paints a LineView every frame.
type Game struct {
	view          *view.LineView
	width, height int
	surface       *Surface
}

var _ ebiten.Game = (*Game)(nil)

// NewGame wraps v for a width x height logical screen.
func NewGame(v *view.LineView, width, height int) *Game {
	return &Game{view: v, width: width, height: height}
}

// Update ends the game when Escape is pressed.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw clears the screen with the view background and paints the lines.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.view.Background().Color())
	if g.surface == nil || g.surface.dst != screen {
		g.surface = NewSurface(screen)
	}
	if err := g.view.Draw(g.surface); err != nil {
		ggline.Logger().Warn("ebitenview: draw failed", "err", err)
	}
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens a window showing v and blocks until it is closed.
func Run(v *view.LineView, width, height int, title string) error {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ggline.Logger().Info("ebitenview: opening window", "width", width, "height", height)
	return ebiten.RunGame(NewGame(v, width, height))
}
