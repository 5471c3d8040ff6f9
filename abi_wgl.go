//go:build windows

package main

import "C"

import (
	"log/slog"
	"runtime"

	"github.com/tinyrange/minigl/internal/host"
)

// wglCreateContext allocates this thread's Context, sizing the framebuffer
// from the client rectangle of the window behind hdc.
//
//export wglCreateContext
func wglCreateContext(hdc HDC) HGLRC {
	runtime.LockOSThread()

	hwnd := host.WindowFromDC(hdc)
	width, height, err := host.ClientSize(hwnd)
	if err != nil {
		slog.Error("wglCreateContext: could not query client rect", "err", err)
	}

	host.Create(width, height)
	return 1
}

//export wglMakeCurrent
func wglMakeCurrent(hdc HDC, hglrc HGLRC) GLboolean {
	return 1
}

//export wglGetCurrentContext
func wglGetCurrentContext() HGLRC {
	return 0
}

//export wglGetCurrentDC
func wglGetCurrentDC() HDC {
	return 0
}

// wglDeleteContext is a no-op; Context lifetime is scoped to the owning
// thread and reclaimed at process exit.
//
//export wglDeleteContext
func wglDeleteContext(hglrc HGLRC) GLboolean {
	return 1
}

//export wglGetProcAddress
func wglGetProcAddress(proc *C.char) uintptr {
	return 0
}

//export wglChoosePixelFormat
func wglChoosePixelFormat(hdc HDC, ppfd uintptr) GLboolean {
	return 1
}

//export wglSetPixelFormat
func wglSetPixelFormat(hdc HDC, format GLint, ppfd uintptr) GLboolean {
	return 1
}

// wglSwapBuffers publishes the calling thread's framebuffer to hdc via the
// platform's DIB blit.
//
//export wglSwapBuffers
func wglSwapBuffers(hdc HDC) GLboolean {
	ctx := host.Lookup()
	if ctx == nil {
		slog.Error("wglSwapBuffers: no context current on this thread")
		return 0
	}
	if err := host.BlitFramebuffer(hdc, ctx.Framebuffer); err != nil {
		slog.Error("wglSwapBuffers: blit failed", "err", err)
		return 0
	}
	return 1
}
