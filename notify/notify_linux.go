//go:build linux && !android

package notify

import (
	"github.com/godbus/dbus/v5"
)

// platformNotify uses the freedesktop.org notification service on the session bus.
func platformNotify(title, body string) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return err
	}
	defer conn.Close()

	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		"Jigsaw", uint32(0), "", title, body, []string{}, map[string]dbus.Variant{}, int32(5000))
	return call.Err
}
