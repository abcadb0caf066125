//go:build !wasm

package internal

import "sync"

var runtimes sync.Map

// GetRuntime returns the runtime bound to the calling goroutine, creating one on first use.
// A worker draining a runtime is bound to that runtime for the duration of the drain.
// Entries for other goroutines are never removed.
func GetRuntime() *Runtime {
	gid := getGID()

	if r, ok := runtimes.Load(gid); ok {
		return r.(*Runtime)
	}

	r := NewRuntime()
	runtimes.Store(gid, r)
	return r
}

func bind(gid int64, r *Runtime) {
	runtimes.Store(gid, r)
}

func unbind(gid int64) {
	runtimes.Delete(gid)
}
