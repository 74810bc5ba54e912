// Package dynarray is the root of a small container library for Go.
//
// The repository holds one generic sequence container and a tool to watch
// its capacity policy at work:
//
//   - dynarray: Array[T], a contiguous, resizable sequence with amortized
//     O(1) append and remove-at-end, positional insert/erase, and explicit
//     Reserve / Shrink / ShrinkToFit control over the backing buffer
//   - cmd/dynreplay: replays a JSON operation script against an Array[int]
//     and prints the size/capacity trace, one JSON object per step
//
// The container keeps a single owner and no internal locking; wrap it with
// your own mutex if several goroutines need it.
//
// Package dynarray See subpackages:
//   - dynarray: the container package
//   - cmd/dynreplay: the replay tool
package dynarray
