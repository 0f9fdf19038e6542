package vlist

// rowCache is a sparse index -> element map. Slots are filled on first use
// and never evicted; the whole cache is replaced on Clear.
type rowCache struct {
	slots map[int]Element
}

func newRowCache() rowCache {
	return rowCache{slots: make(map[int]Element)}
}

func (c rowCache) get(index int) (Element, bool) {
	e, ok := c.slots[index]
	return e, ok
}

func (c rowCache) put(index int, e Element) {
	c.slots[index] = e
}

func (c rowCache) len() int { return len(c.slots) }

// GetOrCreate returns the element for the row at index, creating, positioning
// and attaching it on first use. Later calls return the same element without
// calling the factory again.
//
// index must be within [0, Len()-1].
func (v *VirtualList[T]) GetOrCreate(index int) Element {
	if e, ok := v.cache.get(index); ok {
		return e
	}
	e := v.createRowElement(v.data[index], index)
	v.cache.put(index, e)
	return e
}

func (v *VirtualList[T]) createRowElement(row T, index int) Element {
	e := v.factory(row, index)
	e.AddClass(ClassRow)
	e.SetHeight(v.rowHeight)
	e.SetOffset(index*v.rowHeight, 0)
	v.container.Append(e)
	return e
}
