package notify

import (
	"errors"
	"sync"
	"testing"
)

type recorder struct {
	mu    sync.Mutex
	sent  []string
	title string
	err   error
}

func (r *recorder) send(title, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.title = title
	r.sent = append(r.sent, body)
	return r.err
}

func newTestNotifier(enabled bool) (*Notifier, *recorder) {
	rec := &recorder{}
	n := New(DefaultPreferences(), enabled)
	n.Send = rec.send
	return n, rec
}

func TestNotifierSendsWhenEnabled(t *testing.T) {
	n, rec := newTestNotifier(true)

	n.Solved(12)
	n.Expired()
	n.Wait()

	if len(rec.sent) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(rec.sent))
	}
	if rec.title != "Jigsaw" {
		t.Fatalf("unexpected title %q", rec.title)
	}

	want := map[string]bool{
		"Puzzle solved with 12 seconds to spare": true,
		"Time is up": true,
	}
	for _, body := range rec.sent {
		if !want[body] {
			t.Fatalf("unexpected body %q", body)
		}
	}
}

func TestNotifierDisabled(t *testing.T) {
	n, rec := newTestNotifier(false)

	n.Solved(3)
	n.Wait()
	if len(rec.sent) != 0 {
		t.Fatalf("disabled notifier sent %v", rec.sent)
	}

	n.SetEnabled(true)
	n.Solved(3)
	n.Wait()
	if len(rec.sent) != 1 {
		t.Fatalf("expected a notification after enabling, got %v", rec.sent)
	}
}

func TestNilNotifier(t *testing.T) {
	var n *Notifier

	n.Solved(1)
	n.Expired()
	n.SetEnabled(true)
	n.Wait()

	if n.Enabled() {
		t.Fatalf("nil notifier should never be enabled")
	}
}

func TestNotifierEmptyTemplate(t *testing.T) {
	prefs := DefaultPreferences()
	prefs.Templates[EventExpired] = "  "

	rec := &recorder{}
	n := New(prefs, true)
	n.Send = rec.send

	n.Expired()
	n.Wait()

	if len(rec.sent) != 0 {
		t.Fatalf("expected nothing for an empty template, got %v", rec.sent)
	}
}

func TestNewCopiesTemplates(t *testing.T) {
	prefs := DefaultPreferences()
	n := New(prefs, true)

	prefs.Templates[EventExpired] = "changed"

	if got := n.Body(EventExpired); got != "Time is up" {
		t.Fatalf("notifier shares templates with the caller: %q", got)
	}
}

func TestNotifierSendErrorIsLogged(t *testing.T) {
	n, rec := newTestNotifier(true)
	rec.err = errors.New("no bus")

	n.Expired()
	n.Wait()

	if len(rec.sent) != 1 {
		t.Fatalf("expected one attempt, got %d", len(rec.sent))
	}
}
