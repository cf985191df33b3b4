package observability

import "sync/atomic"

// hookSet is replaced as a whole so readers never see a partial update.
type hookSet struct {
	update UpdateHooks
	cache  CacheHooks
	http   HTTPHooks
}

var current atomic.Pointer[hookSet]

func init() { Reset() }

// swap applies f to a copy of the current set and installs it. The returned
// func reinstalls the set that was current before the call.
func swap(f func(*hookSet)) (restore func()) {
	for {
		old := current.Load()
		next := *old
		f(&next)
		if current.CompareAndSwap(old, &next) {
			return func() { current.Store(old) }
		}
	}
}

// SetUpdateHooks installs h. A nil h leaves the current hooks in place.
func SetUpdateHooks(h UpdateHooks) (restore func()) {
	return swap(func(s *hookSet) {
		if h != nil {
			s.update = h
		}
	})
}

// SetCacheHooks installs h. A nil h leaves the current hooks in place.
func SetCacheHooks(h CacheHooks) (restore func()) {
	return swap(func(s *hookSet) {
		if h != nil {
			s.cache = h
		}
	})
}

// SetHTTPHooks installs h. A nil h leaves the current hooks in place.
func SetHTTPHooks(h HTTPHooks) (restore func()) {
	return swap(func(s *hookSet) {
		if h != nil {
			s.http = h
		}
	})
}

func Update() UpdateHooks { return current.Load().update }
func Cache() CacheHooks   { return current.Load().cache }
func HTTP() HTTPHooks     { return current.Load().http }

// Reset restores the no-op hooks.
func Reset() {
	current.Store(&hookSet{
		update: NoopUpdateHooks{},
		cache:  NoopCacheHooks{},
		http:   NoopHTTPHooks{},
	})
}
