// Package dynarray provides Array[T], a contiguous, resizable sequence container.
//
// Array owns a single backing buffer. The first Len() slots hold the live
// elements in insertion order; the remaining Cap()-Len() slots are spare room
// for future appends and always hold the zero value of T.
//
// Capacity policy:
//
//   - Grow: when an append or insert finds the buffer full, capacity becomes
//     max(1, 2*Cap()). Appends are amortized O(1).
//   - Shrink: after PopBack or Erase, if Len() <= Cap()/4 the capacity is
//     halved (never below 1). The gap between the grow and shrink thresholds
//     keeps alternating push/pop sequences from reallocating on every call.
//   - Reserve: grows to exactly the requested capacity, never shrinks.
//   - ShrinkToFit: drops capacity to max(1, Len()).
//
// Every capacity change goes through one copy-then-swap step, so the old
// buffer is left untouched until the new one is fully populated.
//
// Errors come in two tiers:
//
//   - At and AtRef are bounds checked and return an IndexOutOfRangeError.
//   - Get, Ref, Set, Front, Back, PopBack, Insert and Erase have
//     preconditions. Violating them panics with the matching error value.
//
// An Array is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
//
// Import
//
//	"github.com/sghaida/dynarray/dynarray"
package dynarray
