package engine

import (
	"fmt"
	"runtime/debug"

	"github.com/op/go-logging"
)

// recoverToLog runs f, logging any panic with a stack trace instead of
// letting it crash the scan mid-flight. Used to wrap the receiver
// goroutine.
func recoverToLog(f func(), log *logging.Logger) {
	defer func() {
		if x := recover(); x != nil {
			if log != nil {
				log.Error(fmt.Sprintf("run time panic: %v", x))
				log.Error(string(debug.Stack()))
			}
		}
	}()
	f()
}
