// Package searchroute is the workhorse of the search engine: a mutable,
// indexed sequence of client visits with lazily refreshed prefix/suffix
// segment caches, owned exclusively by the local-search driver for the
// duration of one search pass.
//
// Design note (arena/handle, no pointer graph): rather than a doubly
// linked list of heap-allocated nodes each holding a back-reference to
// its route and neighbours, a Route is a single dense slice of location
// indices. A "node handle" is just a slot index into that slice;
// predecessor/successor resolve to slot-1/slot+1 with no pointer chasing
// and no possibility of a reference cycle. This is the systems-rewrite
// form of the design note's arena: the slice *is* the arena, and the slot
// index *is* the handle.
//
// Slot 0 holds the route's starting depot, slot size+1 holds the
// returning depot (invariant: always the same depot), and clients occupy
// slots [1, size]. Mutating methods (Insert/Remove/Swap) only flag the
// cache dirty; callers must call Update before querying Before/After/
// Between again, mirroring the teacher's two-opt routines, which batch a
// segment's distance delta and only refresh the working tour once the
// move is accepted.
package searchroute
