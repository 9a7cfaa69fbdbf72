// Package ebitenhost drives tween steppers from an Ebitengine game loop.
//
// Ebitengine calls Game.Update at a fixed tick rate, so the frame delta is
// derived from [ebiten.TPS] rather than measured:
//
//	type Game struct{ tweens ebitenhost.Batch }
//
//	func (g *Game) Update() error { return g.tweens.Update() }
package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/tween"
)

const fallbackDelta = 1.0 / 60

// Delta returns the seconds covered by one Update call at the current tick
// rate. When ticks are synced to frames it uses the measured FPS, and falls
// back to 1/60 before any frame has been measured.
func Delta() float64 {
	if tps := ebiten.TPS(); tps > 0 {
		return 1 / float64(tps)
	}
	if fps := ebiten.ActualFPS(); fps > 0 {
		return 1 / fps
	}
	return fallbackDelta
}

// Batch is a caller-owned list of steppers updated together. Finished steppers
// are dropped on the update that finishes them. The zero value is ready to use.
type Batch struct {
	steppers []tween.Stepper
	pending  []tween.Stepper
	stepping bool
}

// Add appends steppers to the batch. Steppers added from inside Step join
// after the current pass and are first stepped on the next one.
func (b *Batch) Add(s ...tween.Stepper) {
	if b.stepping {
		b.pending = append(b.pending, s...)
		return
	}
	b.steppers = append(b.steppers, s...)
}

// Len returns the number of unfinished steppers.
func (b *Batch) Len() int {
	return len(b.steppers)
}

// Update steps every stepper by Delta. Its signature matches ebiten.Game's
// Update; it never fails.
func (b *Batch) Update() error {
	b.Step(Delta())
	return nil
}

// Step advances every stepper by dt seconds in insertion order and removes
// the ones that finished.
func (b *Batch) Step(dt float64) {
	b.stepping = true
	live := b.steppers[:0]
	for _, s := range b.steppers {
		if !s.Update(dt) {
			live = append(live, s)
		}
	}
	b.stepping = false

	clear(b.steppers[len(live):])
	b.steppers = append(live, b.pending...)
	clear(b.pending)
	b.pending = b.pending[:0]
}

// Cancel abandons every stepper and empties the batch.
func (b *Batch) Cancel() {
	for _, s := range b.steppers {
		s.Cancel()
	}
	clear(b.steppers)
	b.steppers = b.steppers[:0]
}
