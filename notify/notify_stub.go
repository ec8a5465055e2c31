//go:build !linux || android

package notify

// platformNotify is a no-op where there is no notification service we can talk to.
func platformNotify(title, body string) error {
	return nil
}
