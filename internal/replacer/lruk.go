// Package replacer implements the LRU-K eviction policy: frames with
// fewer than K recorded accesses are "cold" and evicted LRU-first;
// frames with K or more accesses are "warm" and evicted by greatest
// K-distance (furthest known past access).
package replacer

import "sync"

const infinite = ^uint64(0)

type node struct {
	history   []uint64 // bounded to at most K entries, oldest first
	evictable bool
}

// LRUK tracks frames addressed by frame index. It has no capacity of its
// own: a node exists for every frame that has been accessed or had its
// evictability set, until it is evicted or removed.
type LRUK struct {
	mu    sync.Mutex
	k     int
	clock uint64
	nodes map[int]*node
	count int // number of evictable frames
}

func New(k int) *LRUK {
	if k < 1 {
		k = 1
	}
	return &LRUK{k: k, nodes: make(map[int]*node)}
}

// RecordAccess appends the current logical timestamp to frame's history,
// creating the node if absent, keeping at most K entries.
func (r *LRUK) RecordAccess(frame int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clock++
	n := r.nodes[frame]
	if n == nil {
		n = &node{}
		r.nodes[frame] = n
	}
	n.history = append(n.history, r.clock)
	if len(n.history) > r.k {
		n.history = n.history[len(n.history)-r.k:]
	}
}

// SetEvictable is a no-op if flag already matches the current state;
// otherwise flips it and adjusts the evictable count.
func (r *LRUK) SetEvictable(frame int, evictable bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.nodes[frame]
	if n == nil {
		n = &node{}
		r.nodes[frame] = n
	}
	if n.evictable == evictable {
		return
	}
	n.evictable = evictable
	if evictable {
		r.count++
	} else {
		r.count--
	}
}

// Evict selects an evictable frame, rules and removes
// its history, returning (frame, true), or (0, false) if none is
// evictable.
func (r *LRUK) Evict() (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		haveCold, haveWarm     bool
		coldFrame, warmFrame   int
		coldOldest             uint64 = infinite
		warmDistance           uint64
	)

	for frame, n := range r.nodes {
		if !n.evictable {
			continue
		}
		if len(n.history) < r.k {
			oldest := n.history[0]
			if !haveCold || oldest < coldOldest || (oldest == coldOldest && frame < coldFrame) {
				haveCold = true
				coldFrame = frame
				coldOldest = oldest
			}
			continue
		}
		dist := r.clock - n.history[0]
		if !haveWarm || dist > warmDistance || (dist == warmDistance && frame < warmFrame) {
			haveWarm = true
			warmFrame = frame
			warmDistance = dist
		}
	}

	if haveCold {
		r.removeLocked(coldFrame)
		return coldFrame, true
	}
	if haveWarm {
		r.removeLocked(warmFrame)
		return warmFrame, true
	}
	return 0, false
}

// Remove forcibly drops all history for frame, used when the buffer pool
// deletes a page.
func (r *LRUK) Remove(frame int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removeLocked(frame)
}

func (r *LRUK) removeLocked(frame int) {
	n, ok := r.nodes[frame]
	if !ok {
		return
	}
	if n.evictable {
		r.count--
	}
	delete(r.nodes, frame)
}

// Size returns the number of currently evictable frames.
func (r *LRUK) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}
