// Package notify shows desktop notifications when a puzzle ends.
package notify

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
)

var errLogger = log.New(os.Stderr, "[ FAIL ]: ", log.Lshortfile)

type Event string

const (
	EventSolved  Event = "solved"
	EventExpired Event = "expired"
)

type Preferences struct {
	Title string
	// fmt templates, the solved one gets the remaining seconds
	Templates map[Event]string
}

func DefaultPreferences() Preferences {
	return Preferences{
		Title: "Jigsaw",
		Templates: map[Event]string{
			EventSolved:  "Puzzle solved with %d seconds to spare",
			EventExpired: "Time is up",
		},
	}
}

// SendFunc delivers one notification.
type SendFunc func(title, body string) error

// Notifier sends notifications in the background.
// A nil or disabled Notifier does nothing.
type Notifier struct {
	prefs   Preferences
	enabled bool

	// Send defaults to the platform notification service.
	Send SendFunc

	wg sync.WaitGroup
}

func New(prefs Preferences, enabled bool) *Notifier {
	cloned := Preferences{Title: prefs.Title, Templates: make(map[Event]string, len(prefs.Templates))}
	for k, v := range prefs.Templates {
		cloned.Templates[k] = v
	}
	return &Notifier{
		prefs:   cloned,
		enabled: enabled,
		Send:    platformNotify,
	}
}

func (n *Notifier) SetEnabled(enabled bool) {
	if n == nil {
		return
	}
	n.enabled = enabled
}

func (n *Notifier) Enabled() bool {
	return n != nil && n.enabled
}

func (n *Notifier) Solved(remaining int) {
	n.dispatch(EventSolved, remaining)
}

func (n *Notifier) Expired() {
	n.dispatch(EventExpired)
}

// Wait blocks until every notification sent so far was delivered.
func (n *Notifier) Wait() {
	if n == nil {
		return
	}
	n.wg.Wait()
}

// Body formats the text for event. Empty if the event has no template.
func (n *Notifier) Body(event Event, args ...any) string {
	if n == nil {
		return ""
	}
	template := strings.TrimSpace(n.prefs.Templates[event])
	if template == "" {
		return ""
	}
	if strings.Contains(template, "%") {
		return strings.TrimSpace(fmt.Sprintf(template, args...))
	}
	return template
}

func (n *Notifier) dispatch(event Event, args ...any) {
	if !n.Enabled() || n.Send == nil {
		return
	}

	body := n.Body(event, args...)
	if body == "" {
		return
	}

	title := n.prefs.Title
	send := n.Send

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		if err := send(title, body); err != nil {
			errLogger.Printf("notification %s: %v", event, err)
		}
	}()
}
