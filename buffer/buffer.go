package buffer

// Ring writes samples into a caller owned slice, wrapping at the end. It has
// no lock: a Ring and its slice belong to a single writer goroutine.
type Ring struct {
	position int
	size     int
	data     []uint32
	passes   uint64
}

func NewRing(data []uint32) *Ring {
	return &Ring{
		size: len(data),
		data: data,
	}
}

// AddItem stores val and reports whether that write completed a full pass
// over the slice.
func (b *Ring) AddItem(val uint32) bool {
	if b.size == 0 {
		return false
	}
	b.data[b.position] = val
	b.position += 1
	if b.position == b.size {
		b.position = 0
		b.passes += 1
		return true
	}
	return false
}

// Passes returns the number of times the slice has been completely rewritten.
func (b *Ring) Passes() uint64 {
	return b.passes
}

func (b *Ring) GetSize() int {
	return b.size
}

func (b *Ring) GetLast() uint32 {
	if b.size == 0 {
		return 0
	}
	index := b.position - 1
	if index < 0 {
		index += b.size
	}
	return b.data[index]
}
