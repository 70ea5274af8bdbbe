// Package art provides the shared primitives used by every generative module.
//
// The package defines small value types and pure helpers:
//
//   - [Color]: 8-bit RGBA color with [LerpColor], [Fade] and [ColorFromHSV]
//   - [Vec2]: 2D point/vector with [PolarToCartesian]
//   - [SmoothStep]: Hermite easing between two edges
//   - [Rand]: injectable random source, see [NewRand] and [Between]
//   - [AnimationSettings]: speed/time/pause state consumed by update steps
//
// # Randomness
//
// Nothing in this module reads a process-wide random source. Generators take a
// [Rand] so a fixed seed reproduces the same image:
//
//	rng := art.NewRand(42)
//	p := mandala.Generate(rng, mandala.DefaultOptions())
package art
