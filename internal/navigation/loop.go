package navigation

import "sync"

// Loop is the single serialized execution context: one goroutine draining a
// FIFO queue. Background work completes off-loop and must Post its
// completion callback here before touching the controller or notifying.
// Callbacks are delivered in submission order relative to each other.
type Loop struct {
	tasks chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

// NewLoop starts the loop goroutine.
func NewLoop() *Loop {
	l := &Loop{tasks: make(chan func(), 128)}
	l.wg.Add(1)
	go l.run()
	return l
}

func (l *Loop) run() {
	defer l.wg.Done()
	for fn := range l.tasks {
		fn()
	}
}

// Post queues fn for execution on the loop.
func (l *Loop) Post(fn func()) {
	l.tasks <- fn
}

// Do queues fn and blocks until it has run. Must not be called from the
// loop itself.
func (l *Loop) Do(fn func()) {
	done := make(chan struct{})
	l.Post(func() {
		defer close(done)
		fn()
	})
	<-done
}

// Close stops the loop after queued work drains.
func (l *Loop) Close() {
	l.once.Do(func() { close(l.tasks) })
	l.wg.Wait()
}
