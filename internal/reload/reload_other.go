//go:build !unix

package reload

import (
	"fmt"
	"runtime"
)

func sendSignal(pid int, app string) error {
	return fmt.Errorf("reloading %s is not supported on %s", app, runtime.GOOS)
}
