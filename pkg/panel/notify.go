package panel

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const dismissAfter = 4 * time.Second

// Level classifies a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is one transient user-visible message.
type Notification struct {
	ID      int
	Level   Level
	Message string
}

// Notifier collects the transient notifications a screen shows. Each entry
// dismisses itself after four seconds; errors are additionally logged for
// diagnostics. Operations never block the caller.
type Notifier struct {
	mu     sync.Mutex
	nextID int
	notes  []Notification
	log    zerolog.Logger

	// after is swappable for tests.
	after func(time.Duration, func()) *time.Timer
}

// NewNotifier creates a notifier logging diagnostics to log.
func NewNotifier(log zerolog.Logger) *Notifier {
	return &Notifier{log: log, after: time.AfterFunc}
}

// Success shows a transient success message.
func (n *Notifier) Success(message string) {
	n.push(LevelSuccess, message)
}

// Error shows a transient error message and logs it.
func (n *Notifier) Error(message string) {
	n.log.Error().Str("notification", message).Msg("screen error")
	n.push(LevelError, message)
}

// Active returns the notifications currently on screen.
func (n *Notifier) Active() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Notification, len(n.notes))
	copy(out, n.notes)
	return out
}

func (n *Notifier) push(level Level, message string) {
	n.mu.Lock()
	n.nextID++
	id := n.nextID
	n.notes = append(n.notes, Notification{ID: id, Level: level, Message: message})
	n.mu.Unlock()

	n.after(dismissAfter, func() { n.dismiss(id) })
}

func (n *Notifier) dismiss(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, note := range n.notes {
		if note.ID == id {
			n.notes = append(n.notes[:i], n.notes[i+1:]...)
			return
		}
	}
}
