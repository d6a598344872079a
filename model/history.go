package model

const defaultHistorySize = 5

// History remembers the hashes of recent generations to spot still lifes,
// short-period oscillators and extinction
type History struct {
	size   int
	hashes []string
}

// NewHistory keeps the last size generations; size <= 0 uses 5
func NewHistory(size int) *History {
	if size <= 0 {
		size = defaultHistorySize
	}
	return &History{size: size}
}

// Observe records g and reports whether it repeats one of the remembered generations
func (h *History) Observe(g *Grid) bool {
	hash := g.Hash()
	repeated := false
	for _, seen := range h.hashes {
		if seen == hash {
			repeated = true
			break
		}
	}

	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
	return repeated
}

// Reset forgets every remembered generation
func (h *History) Reset() {
	h.hashes = nil
}

// Len returns how many generations are remembered
func (h *History) Len() int {
	return len(h.hashes)
}
