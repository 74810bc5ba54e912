// Command dynreplay replays a script of array operations and prints how the
// size and capacity of a dynarray.Array[int] evolve.
//
// Usage
//
//	dynreplay -script ops.json [-out trace.jsonl] [-values] [-v]
//
// Flags
//
//   - -script: path to the JSON script (required)
//   - -out: write the trace here instead of stdout
//   - -values: include the live elements in every trace line
//   - -v: log every reallocation to stderr
//
// Script format
//
//	{
//	  "capacity": 0,
//	  "ops": [
//	    {"op": "push", "value": 1},
//	    {"op": "insert", "index": 0, "value": 2},
//	    {"op": "erase", "index": 1},
//	    {"op": "pop"},
//	    {"op": "reserve", "n": 20},
//	    {"op": "shrink"},
//	    {"op": "shrink_to_fit"},
//	    {"op": "at", "index": 3}
//	  ]
//	}
//
// "capacity" reserves slots before the first op.
//
// Every op's precondition is checked before it runs; a violation (pop on an
// empty array, insert or erase out of range) stops the replay with an error
// naming the step. An "at" outside the live range is not fatal: its error is
// recorded in the trace line and the replay continues.
//
// Output
//
// One JSON object per step:
//
//	{"step":1,"op":"push","size":1,"cap":1}
//	{"step":8,"op":"at","size":3,"cap":4,"value":7}
//	{"step":9,"op":"at","size":3,"cap":4,"error":"dynarray: index 5 out of range [0,3)"}
package main
