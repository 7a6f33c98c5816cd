package cluster

// Slot is a resolved landing position in the assembled grid: a top-level
// column and a rank within that column.
type Slot struct {
	Column int
	Row    int
}

// Index maps tab ids to grid slots. It is built once per clustering result
// so that the per-frame lookup during assembly is O(1) instead of a
// recursive search over the forest.
type Index struct {
	slots   map[string]Slot
	columns int
}

// BuildIndex flattens the forest. An id claimed by several groups belongs to
// the first top-level group whose subtree lists it; its row is the id's rank
// within that subtree's depth-first member list. Rank assignment is
// order-preserving, so rebuilding the index from the same result always
// yields identical slots.
func BuildIndex(res *Result) *Index {
	ix := &Index{slots: make(map[string]Slot)}
	if res == nil {
		return ix
	}
	ix.columns = len(res.Groups)
	for col := range res.Groups {
		row := 0
		for _, id := range res.Groups[col].members() {
			if _, taken := ix.slots[id]; taken {
				continue
			}
			ix.slots[id] = Slot{Column: col, Row: row}
			row++
		}
	}
	return ix
}

// Lookup returns the slot for id, if the forest contains it.
func (ix *Index) Lookup(id string) (Slot, bool) {
	s, ok := ix.slots[id]
	return s, ok
}

// Columns is the number of named top-level groups. Ids absent from the
// forest land in the overflow column at index Columns().
func (ix *Index) Columns() int { return ix.columns }
