// Package materialize converts a resolved gridpos.CollapsedGrid of external
// ids into caller-defined artifacts — tile sprites, mesh instances, game
// objects, whatever T is — via a single generic hook, per spec.md §4.9.
//
// What:
//
//   - Builder[T] produces a T from a tid/pid and reports which ids it can
//     produce, so coverage can be checked before any T is built.
//   - CloneBuilder[T] builds by copying a registered prototype per id.
//   - FuncBuilder[T] builds by calling a caller-supplied function per id.
//   - Materialize is the single public entry point: it checks coverage
//     with CheckMissing, then builds one T per occupied position.
//
// Why:
//
//   - The core (gridpos through resolve) never needs to know what a tid
//     "looks like" — keeping that boundary at a single generic function
//     mirrors builder/api.go's "one orchestrator, resolve config, apply in
//     order" shape, repointed from assembling a core.Graph fixture to
//     assembling whatever a caller's rendering or game layer needs.
package materialize
