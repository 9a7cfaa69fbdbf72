package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const overlayRefresh = 0.5

// Overlay prints the frame rate, tick rate, and live stepper count of a Batch
// in the top-left corner. The text refreshes every half second.
type Overlay struct {
	Batch *Batch

	img     *ebiten.Image
	text    string
	elapsed float64
}

// Update advances the refresh timer by dt seconds and rebuilds the text when
// it is due. It reports whether the text changed.
func (o *Overlay) Update(dt float64) bool {
	o.elapsed += dt
	if o.text != "" && o.elapsed < overlayRefresh {
		return false
	}
	o.elapsed = 0

	live := 0
	if o.Batch != nil {
		live = o.Batch.Len()
	}
	o.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nTweens: %d", ebiten.ActualFPS(), ebiten.ActualTPS(), live)
	return true
}

// Text returns the most recent overlay text.
func (o *Overlay) Text() string {
	return o.text
}

// Draw renders the overlay onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.img == nil {
		// Enough for three short lines of debug font.
		o.img = ebiten.NewImage(110, 48)
	}
	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.text)
	screen.DrawImage(o.img, nil)
}
