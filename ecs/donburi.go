package ecs

import (
	"github.com/phanxgames/tween"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TweenData is the component holding an entity's running stepper.
type TweenData struct {
	Stepper tween.Stepper
}

// Tween is the Donburi component type for TweenData.
var Tween = donburi.NewComponentType[TweenData]()

// Finished is published when an entity's stepper completes or is abandoned.
type Finished struct {
	Entity donburi.Entity
}

// FinishedEventType carries Finished events. Subscribe to it to chain
// behavior onto the end of a tween.
var FinishedEventType = events.NewEventType[Finished]()

// Attach gives entity a stepper, replacing (and cancelling) any stepper it
// already had. Invalid entities are ignored.
func Attach(world donburi.World, entity donburi.Entity, s tween.Stepper) {
	if !world.Valid(entity) {
		return
	}
	entry := world.Entry(entity)
	if entry.HasComponent(Tween) {
		if prev := Tween.Get(entry).Stepper; prev != nil {
			prev.Cancel()
		}
		Tween.SetValue(entry, TweenData{Stepper: s})
		return
	}
	entry.AddComponent(Tween)
	Tween.SetValue(entry, TweenData{Stepper: s})
}

// Detach cancels and removes an entity's stepper.
func Detach(world donburi.World, entity donburi.Entity) {
	if !world.Valid(entity) {
		return
	}
	entry := world.Entry(entity)
	if !entry.HasComponent(Tween) {
		return
	}
	if s := Tween.Get(entry).Stepper; s != nil {
		s.Cancel()
	}
	entry.RemoveComponent(Tween)
}

// Step advances every attached stepper by dt seconds. Finished steppers are
// removed after the pass and a Finished event is published for each.
func Step(world donburi.World, dt float64) {
	var finished []donburi.Entity
	Tween.Each(world, func(entry *donburi.Entry) {
		s := Tween.Get(entry).Stepper
		if s == nil || s.Update(dt) {
			finished = append(finished, entry.Entity())
		}
	})

	for _, e := range finished {
		if !world.Valid(e) {
			continue
		}
		world.Entry(e).RemoveComponent(Tween)
		FinishedEventType.Publish(world, Finished{Entity: e})
	}
}
