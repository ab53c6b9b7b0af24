package search

// ledger records the best cost seen so far per coordinate.
type ledger map[Coord]float64

func newLedger() ledger {
	return make(ledger, 64)
}

func (l ledger) cost(c Coord) (float64, bool) {
	v, ok := l[c]
	return v, ok
}

// improve stores cost for c if c is unseen or cost is strictly cheaper, and
// reports whether it did.
func (l ledger) improve(c Coord, cost float64) bool {
	if prev, ok := l[c]; ok && cost >= prev {
		return false
	}
	l[c] = cost
	return true
}
