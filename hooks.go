package urx

// Teardown releases whatever a producer acquired for one subscription.
type Teardown func()

// hooks is a list of teardown actions that runs at most once.
type hooks struct {
	list     []Teardown
	finished bool
}

func (h *hooks) Add(hook Teardown) {
	if hook == nil {
		return
	}
	h.list = append(h.list, hook)
}

// take marks the list finished and hands back the pending hooks. Only the first
// call returns anything.
func (h *hooks) take() []Teardown {
	if h.finished {
		return nil
	}
	h.finished = true
	list := h.list
	h.list = nil
	return list
}

func (h *hooks) callHooks() {
	for _, hook := range h.take() {
		hook()
	}
}
