package random

import "sync/atomic"

const (
	stateUninitialized int32 = iota
	stateInitialized
	stateInitializing
)

// onceFlag is a resettable one-shot guard for the lazy generators. Unlike
// sync.Once it can be put back to the uninitialized state.
type onceFlag struct {
	state int32
}

func (o *onceFlag) Done() bool {
	return atomic.LoadInt32(&o.state) == stateInitialized
}

// Do runs f if the flag is uninitialized and then marks it initialized.
// Only the caller that moves the flag to initializing runs f; a call made
// while f is still running returns without running it.
func (o *onceFlag) Do(f func()) {
	if atomic.LoadInt32(&o.state) == stateInitialized {
		return
	}
	o.doSlow(f)
}

func (o *onceFlag) doSlow(f func()) {
	if !atomic.CompareAndSwapInt32(&o.state, stateUninitialized, stateInitializing) {
		return
	}
	f()
	atomic.StoreInt32(&o.state, stateInitialized)
}

func (o *onceFlag) Reset() {
	atomic.StoreInt32(&o.state, stateUninitialized)
}
