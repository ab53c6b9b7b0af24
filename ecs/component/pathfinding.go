package component

import "github.com/milk9111/gridtactics/search"

// PathFollower walks an entity toward Goal one cell at a time.
type PathFollower struct {
	Goal         search.Coord
	RepathFrames int
	StepFrames   int
	FrameCounter int
	Revision     uint64
	Path         search.Path
	Visited      []search.Coord
	Next         int
	Planned      bool
	Arrived      bool
}

// Remaining returns the cells still ahead of the follower.
func (p *PathFollower) Remaining() search.Path {
	if p.Next >= len(p.Path) {
		return nil
	}
	return p.Path[p.Next:]
}

var PathFollowerComponent = NewComponent[PathFollower]()
