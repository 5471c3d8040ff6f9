//go:build windows

// Package host provides the Windows-facing machinery around the pipeline:
// a per-thread Context registry (Go has no OS-thread-local storage reachable
// from a cgo-exported function) and the GDI adapter that blits a rasterized
// framebuffer onto a real window.
package host

import (
	"sync"

	"golang.org/x/sys/windows"

	"github.com/tinyrange/minigl/internal/glcore"
)

// registry maps the calling OS thread id to its Context, the stand-in for
// thread-local storage a cgo export boundary can't otherwise get.
var registry sync.Map // map[uint32]*glcore.Context

// CurrentThreadID returns the OS thread id of the calling goroutine. Callers
// that intend to key or look up a Context must have called
// runtime.LockOSThread first, or the id is meaningless by the time it's
// used.
func CurrentThreadID() uint32 {
	return windows.GetCurrentThreadId()
}

// Create allocates a new Context and registers it under the calling
// thread's id, replacing any Context already registered there.
func Create(width, height int) *Context {
	ctx := &Context{Context: glcore.NewContext(width, height), threadID: CurrentThreadID()}
	registry.Store(ctx.threadID, ctx)
	return ctx
}

// Lookup returns the Context registered for the calling thread, or nil if
// none is current.
func Lookup() *Context {
	v, ok := registry.Load(CurrentThreadID())
	if !ok {
		return nil
	}
	return v.(*Context)
}

// Delete removes ctx from the registry, under the thread id it was
// registered with at Create (not necessarily the calling thread).
func Delete(ctx *Context) {
	registry.Delete(ctx.threadID)
}

// Context pairs a pipeline Context with the OS thread id it is registered
// under.
type Context struct {
	*glcore.Context
	threadID uint32
}
