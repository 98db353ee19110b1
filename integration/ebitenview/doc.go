// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitenview presents a view.LineView in a live ebiten window.
//
// The data flow is:
//
//	LineView -> ggline.Render -> Surface -> vector.StrokeLine -> ebiten screen
//
// # Usage
//
//	v, _ := view.DemoScene()
//	defer v.Close()
//
//	if err := ebitenview.Run(v, 375, 667, "Lines"); err != nil {
//	    log.Fatal(err)
//	}
//
// The window closes on Escape or when the user closes it. Run blocks until
// then and must be called from the main goroutine.
package ebitenview
