//go:build !darwin

package session

import "runtime"

// yield is a cooperative scheduling hint elsewhere; a no-op for
// correctness, same as the darwin variant.
func yield() {
	runtime.Gosched()
}
