package ocr

import "sync"

var (
	sharedMu       sync.Mutex
	sharedDetector Detector
	sharedErr      error
	sharedInit     bool
)

// Shared returns the process-wide detector, constructing it with factory on
// first use. The first caller pays the model-load cost; later callers,
// concurrent or sequential, reuse the same instance. The factory result
// (including a construction error) is cached, so the engine is initialized
// at most once per process regardless of call frequency.
func Shared(factory func() (Detector, error)) (Detector, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if !sharedInit {
		sharedDetector, sharedErr = factory()
		sharedInit = true
	}
	return sharedDetector, sharedErr
}

// ResetShared discards the cached detector. Intended for tests.
func ResetShared() {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	sharedDetector, sharedErr, sharedInit = nil, nil, false
}
