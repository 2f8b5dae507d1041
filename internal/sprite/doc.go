// Package sprite pairs default/hover image files and drives the batch that
// composites each pair into a single vertically stacked sprite.
//
// A batch is destructive by contract: writing a sprite overwrites the pair's
// primary file and then deletes the secondary file. Re-running the same
// batch therefore fails on the missing secondaries; callers wanting a
// preview use discovery (or Registry.Pairs) without invoking the Runner.
//
// Processing is strictly sequential with no locking; two concurrent runs
// over the same directory race on the files themselves, so invocations
// against one directory must be serialized by the caller.
package sprite
