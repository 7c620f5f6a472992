//go:build unix

package reload

import (
	"fmt"
	"syscall"
)

// appSignals maps apps to the signal that makes them reload.
// dunst is terminated and restarted on demand by D-Bus activation.
var appSignals = map[string]syscall.Signal{
	AppKitty:  syscall.SIGUSR1,
	AppWaybar: syscall.SIGUSR2,
	AppDunst:  syscall.SIGTERM,
}

func sendSignal(pid int, app string) error {
	sig, ok := appSignals[app]
	if !ok {
		return fmt.Errorf("no reload signal for %s", app)
	}
	return syscall.Kill(pid, sig)
}
