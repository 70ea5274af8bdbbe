// Package module defines the lifecycle contract shared by every generative
// art module and the bounded registry that switches between them.
//
// A [Module] only has to report its name. Everything else is an optional
// capability discovered by type assertion:
//
//   - [Initializer]: called when the module becomes current
//   - [Updater]: advances animation by the frame delta
//   - [Drawer]: redraws the whole frame on a render.Surface
//   - [Cleaner]: called when the module is switched away from
//   - [InputHandler]: reacts to key state once per frame
//
// The helpers [Init], [Update], [Draw], [Cleanup] and [HandleInput] dispatch
// through those assertions so callers never need to check.
//
// # Thread Safety
//
// Registry and modules are driven from a single frame loop and are NOT
// thread-safe.
package module
