// Package ecs steps tween drivers attached to entities of a [Donburi] world.
//
// Attach a driver to an entity and run [Step] from a system once per frame:
//
//	d := tween.Pointer[float64]().To(&hp.Display, hp.Value, 0.3, tween.Scalar(tween.QuadOut.Func()))
//	ecs.Attach(world, entity, d)
//
//	// each frame
//	ecs.Step(world, dt)
//	ecs.FinishedEventType.ProcessEvents(world)
//
// When a driver finishes, its component is removed and a [Finished] event is
// published on [FinishedEventType].
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
