package route

// History is a back/forward stack of visited paths, like a browser's.
type History struct {
	entries []string
	index   int
}

// NewHistory starts a history at start.
func NewHistory(start string) *History {
	return &History{entries: []string{start}}
}

// Current returns the path at the cursor.
func (h *History) Current() string {
	if len(h.entries) == 0 {
		return PathHome
	}
	return h.entries[h.index]
}

// Push records a new visit and drops any forward entries. Pushing the
// current path again is a no-op.
func (h *History) Push(p string) {
	if len(h.entries) > 0 && h.entries[h.index] == p {
		return
	}
	if len(h.entries) > 0 {
		h.entries = h.entries[:h.index+1]
	}
	h.entries = append(h.entries, p)
	h.index = len(h.entries) - 1
}

// Replace overwrites the current entry; used for redirects.
func (h *History) Replace(p string) {
	if len(h.entries) == 0 {
		h.entries = []string{p}
		h.index = 0
		return
	}
	h.entries[h.index] = p
}

// Back moves the cursor one entry back.
func (h *History) Back() (string, bool) {
	if !h.CanBack() {
		return h.Current(), false
	}
	h.index--
	return h.entries[h.index], true
}

// Forward moves the cursor one entry forward.
func (h *History) Forward() (string, bool) {
	if !h.CanForward() {
		return h.Current(), false
	}
	h.index++
	return h.entries[h.index], true
}

func (h *History) CanBack() bool    { return h.index > 0 }
func (h *History) CanForward() bool { return h.index < len(h.entries)-1 }

// Len returns the number of entries.
func (h *History) Len() int { return len(h.entries) }
