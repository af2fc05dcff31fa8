package logging

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// RecoverPanic logs a panic with its stack trace and exits. It must be
// deferred at the start of main. Contract violations in the shadow layer
// panic, so this is where they surface.
func RecoverPanic(logger zerolog.Logger) {
	r := recover()
	if r == nil {
		return
	}
	logPanic(logger, r)
	os.Exit(2)
}

func logPanic(logger zerolog.Logger, r any) {
	logger.Error().
		Str("panic", fmt.Sprint(r)).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Bytes("stack", debug.Stack()).
		Msg("PANIC")
}
