//go:build windows

package main

import "golang.org/x/sys/windows"

// DPI awareness must be set before any Win32 call so preview pixels map
// 1:1 to screen pixels under display scaling; init runs earliest.
func init() {
	user32 := windows.NewLazySystemDLL("user32.dll")

	// Windows 10 1703+ per-monitor awareness.
	ctx := user32.NewProc("SetProcessDpiAwarenessContext")
	if err := ctx.Find(); err == nil {
		// DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2 = -4
		if r, _, _ := ctx.Call(^uintptr(3)); r != 0 {
			return
		}
		// DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE = -3
		if r, _, _ := ctx.Call(^uintptr(2)); r != 0 {
			return
		}
	}

	// Windows 8.1+ fallback.
	shcore := windows.NewLazySystemDLL("shcore.dll")
	awareness := shcore.NewProc("SetProcessDpiAwareness")
	if err := awareness.Find(); err == nil {
		if r, _, _ := awareness.Call(2); r == 0 { // PROCESS_PER_MONITOR_DPI_AWARE
			return
		}
		_, _, _ = awareness.Call(1) // PROCESS_SYSTEM_DPI_AWARE
		return
	}

	// Vista+ last resort.
	_, _, _ = user32.NewProc("SetProcessDPIAware").Call()
}
