//go:build windows

package host

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	gdi32  = windows.NewLazySystemDLL("gdi32.dll")

	procGetClientRect = user32.NewProc("GetClientRect")
	procWindowFromDC  = gdi32.NewProc("WindowFromDC")
)

func mustFindProc(p *windows.LazyProc) error {
	if err := p.Find(); err != nil {
		return fmt.Errorf("missing procedure %q: %w", p.Name, err)
	}
	return nil
}

func init() {
	for _, p := range []*windows.LazyProc{procGetClientRect, procWindowFromDC} {
		if err := mustFindProc(p); err != nil {
			panic(err)
		}
	}
}

func winErr(op string) error {
	e := windows.GetLastError()
	if e == nil {
		return fmt.Errorf("%s failed", op)
	}
	return fmt.Errorf("%s failed: %w", op, e)
}

type rect struct {
	left, top, right, bottom int32
}

// WindowFromDC returns the HWND that owns the given HDC, as an opaque
// handle value.
func WindowFromDC(hdc uintptr) uintptr {
	h, _, _ := procWindowFromDC.Call(hdc)
	return h
}

// ClientSize returns the width and height of hwnd's client area, as
// reported by GetClientRect.
func ClientSize(hwnd uintptr) (width, height int, err error) {
	var r rect
	ret, _, _ := procGetClientRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return 0, 0, winErr("GetClientRect")
	}
	return int(r.right - r.left), int(r.bottom - r.top), nil
}
