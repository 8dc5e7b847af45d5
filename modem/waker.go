package modem

import "time"

// waker is a single-slot wake-up signal between the transport's data
// callback and the goroutine executing a command.
//
// A pending wake only means that some bytes may be available, not that a
// complete response has arrived. Any number of notify calls before a wait
// collapse into one pending wake.
type waker struct {
	ch chan struct{}
}

func newWaker() *waker {
	return &waker{ch: make(chan struct{}, 1)}
}

// arm discards a wake left over from earlier traffic.
func (w *waker) arm() {
	select {
	case <-w.ch:
	default:
	}
}

// notify is safe to call from any goroutine, concurrently with wait.
func (w *waker) notify() {
	select {
	case w.ch <- struct{}{}:
	default:
	}
}

// wait consumes a pending wake, blocking up to timeout for one to arrive.
// It reports false on timeout.
func (w *waker) wait(timeout time.Duration) bool {
	select {
	case <-w.ch:
		return true
	default:
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-w.ch:
		return true
	case <-timer.C:
		return false
	}
}
