package mend

// reason classifies why a checkpoint was recorded.
type reason uint8

const (
	reasonNone reason = iota
	reasonStringEscape
	reasonCollectionItem
)

// checkpoint is the single pending rollback point: the input position and
// stack depth the output must be cut back to if the input ends before the
// uncertainty resolves. At most one is live at a time; the earliest
// unresolved uncertainty wins.
type checkpoint struct {
	pos   int
	depth int
	why   reason
}

// set records a checkpoint unless one is already pending.
func (c *checkpoint) set(pos, depth int, why reason) {
	if c.why != reasonNone {
		return
	}
	c.pos = pos
	c.depth = depth
	c.why = why
}

// clear discards the pending checkpoint only if it was recorded for the
// same reason; stale clears are ignored.
func (c *checkpoint) clear(why reason) {
	if c.why == why {
		*c = checkpoint{}
	}
}

func (c *checkpoint) pending() bool {
	return c.why != reasonNone
}
