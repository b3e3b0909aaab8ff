package runopts

import (
	"sync"
	"sync/atomic"
)

// A Debugger is an [Option] that signals the two edges of a Code.Run() call:
// Apply() is invoked synchronously right before the interpreter starts, and
// MarkDone() is called once Run() has returned. It exists so a caller that
// starts Run() in its own goroutine (see Code.StartDebugging) has a
// race-free way to wait for "the interpreter has started" without risking a
// missed signal if Wait() is called after Apply() already ran: started is
// closed exactly once, so a Wait() arriving after Apply() still sees it
// already closed rather than blocking forever.
type Debugger struct {
	startOnce sync.Once
	started   chan struct{}
	done      atomic.Bool
}

var _ Option = (*Debugger)(nil)

// NewDebugger returns a ready-to-use Debugger.
func NewDebugger() *Debugger {
	return &Debugger{started: make(chan struct{})}
}

// Apply marks the Debugger as started. It never modifies cfg.
func (d *Debugger) Apply(cfg *Configuration) error {
	d.startOnce.Do(func() { close(d.started) })
	return nil
}

// Wait blocks until Apply() has run, i.e. until the wrapped Run() call has
// begun executing.
func (d *Debugger) Wait() {
	<-d.started
}

// MarkDone records that the wrapped Run() call has returned. Called by
// Code.StartDebugging once its goroutine's call to Run() completes.
func (d *Debugger) MarkDone() {
	d.done.Store(true)
}

// Done reports whether the wrapped Run() call has returned.
func (d *Debugger) Done() bool {
	return d.done.Load()
}
