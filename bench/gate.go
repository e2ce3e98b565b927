package bench

// StartGate holds workers at a barrier until a single release signal,
// so every worker begins its timed loop at the same instant. The
// release is sticky: workers arriving after Release proceed
// immediately.
type StartGate struct {
	start chan struct{}
}

// NewStartGate creates an unreleased gate.
func NewStartGate() *StartGate {
	return &StartGate{start: make(chan struct{})}
}

// Wait blocks the caller until Release has been called.
func (g *StartGate) Wait() {
	<-g.start
}

// Release opens the gate for all current and future waiters. It must
// be called exactly once.
func (g *StartGate) Release() {
	close(g.start)
}
