//go:build darwin

package session

import "time"

// yield gives the renderer thread a moment to acquire its GL/Vulkan
// context before the next producer wakeup, mirroring the platform-yield
// note for macOS specifically.
func yield() {
	time.Sleep(2 * time.Millisecond)
}
