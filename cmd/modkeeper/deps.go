package main

import (
	"sync"

	"github.com/modkeeper/modkeeper/internal/app"
)

// runtimeProvider hands commands the application runtime.
type runtimeProvider interface {
	Runtime() (*app.Runtime, error)
}

// lazyRuntime opens the runtime on first use so help and version never
// touch storage.
type lazyRuntime struct {
	open func() (*app.Runtime, error)

	once sync.Once
	rt   *app.Runtime
	err  error
}

func newLazyRuntime(open func() (*app.Runtime, error)) *lazyRuntime {
	return &lazyRuntime{open: open}
}

func (l *lazyRuntime) Runtime() (*app.Runtime, error) {
	l.once.Do(func() {
		l.rt, l.err = l.open()
	})
	return l.rt, l.err
}

// Close releases the runtime if it was opened.
func (l *lazyRuntime) Close() error {
	if l.rt == nil {
		return nil
	}
	return l.rt.Close()
}

var runtimes = newLazyRuntime(app.Open)
