package vortex

import "tabnado/internal/cluster"

const (
	columnWidth = 160.0
	rowTop      = 180.0
	rowStep     = 90.0
	rowJitter   = 8.0 // breaks the perfectly uniform grid seam
)

// resolveTarget assigns the particle's landing slot on its first assemble
// tick. Indexed ids land in their group's column at their rank within the
// group; unindexed ids go to the overflow column one position right of all
// named groups, ranked by resolution order. Once set the target is never
// recomputed.
func (e *Engine) resolveTarget(pt *Particle, p Params) {
	columns := 0
	slot := cluster.Slot{}
	found := false
	if e.index != nil {
		columns = e.index.Columns()
		slot, found = e.index.Lookup(pt.ID)
	}
	if !found {
		slot = cluster.Slot{Column: columns, Row: e.overflowRows}
		e.overflowRows++
	}

	// Named columns are laid out evenly around the vortex axis; the overflow
	// column falls naturally one slot to the right. World Y grows upward, so
	// rows step downward from the top anchor.
	x := p.OffsetX + (float64(slot.Column)-float64(columns-1)/2)*columnWidth
	y := rowTop - rowStep*float64(slot.Row) + (e.pool.rng.Float64()*2-1)*rowJitter

	pt.Target = Vec2{X: x, Y: y}
	pt.HasTarget = true
}
