package fn

import "go.uber.org/zap"

// Tap runs effect on v for its side effect and returns v unchanged. A
// returned error or a panic never reaches the caller; it is reported at
// debug level through the global zap logger, which stays a no-op unless
// the host installs one via zap.ReplaceGlobals.
func Tap[T any](v T, effect func(T) error) T {
	runEffect(v, effect)
	return v
}

// TapAsync runs effect on a detached goroutine that is never joined and
// returns v immediately. Failures are discarded the same way as in Tap.
func TapAsync[T any](v T, effect func(T) error) T {
	go runEffect(v, effect)
	return v
}

func runEffect[T any](v T, effect func(T) error) {
	defer func() {
		if p := recover(); p != nil {
			zap.S().Debugw("tap effect panicked", "panic", p)
		}
	}()

	if err := effect(v); err != nil {
		zap.S().Debugw("tap effect failed", "error", err)
	}
}
