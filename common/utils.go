package common

import (
	"time"
)

// TickAndDebounce calls f every tickTime and after a signal on trigger, whichever comes first.
// Signals within debounceTime of the first one are merged into one call of f,
// after debounceTime of continuous signals f is called immediately.
// It returns when trigger is closed, f is not called in application shutdown.
func TickAndDebounce(tickTime time.Duration, debounceTime time.Duration, trigger chan struct{}, f func()) {
	timer := time.NewTimer(tickTime)
	var firstDebounce time.Time
Loop:
	for {
		select {
		case _, ok := <-trigger:
			if !timer.Stop() {
				<-timer.C
			}
			if !ok {
				break Loop
			}
			if firstDebounce.IsZero() {
				firstDebounce = time.Now()
			}
			if firstDebounce.Add(debounceTime).After(time.Now()) {
				timer.Reset(debounceTime)
			} else {
				timer.Reset(0)
			}
		case <-timer.C:
			if !IsInShutdown() {
				f()
			}
			timer.Reset(tickTime)
			firstDebounce = time.Time{}
		}
	}
}
