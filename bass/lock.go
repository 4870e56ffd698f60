package bass

import (
	"errors"
	"runtime"
)

// ChannelLock locks (lock=true) or unlocks a stream, MOD music or recording
// channel to the current OS thread. Other threads calling functions on a
// locked channel block until it is unlocked, so lock only briefly.
//
// A channel must be unlocked on the thread that locked it. A goroutine may
// move to another thread between two calls, so callers must hold
// runtime.LockOSThread across the pair, or use WithChannelLock.
func ChannelLock(handle Channel, lock bool) error {
	if ok, code := lib.channelLock(uint32(handle), lock); !ok {
		return newError("ChannelLock", code)
	}
	return nil
}

// WithChannelLock runs fn while handle is locked. The goroutine is pinned to
// its OS thread for the duration so the unlock happens on the locking
// thread.
//
// A failed unlock is joined with the error returned by fn.
func WithChannelLock(handle Channel, fn func() error) (err error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ChannelLock(handle, true); err != nil {
		return err
	}
	defer func() {
		if uerr := ChannelLock(handle, false); uerr != nil {
			err = errors.Join(err, uerr)
		}
	}()

	return fn()
}
