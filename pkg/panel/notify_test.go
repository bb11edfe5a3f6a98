package panel

import (
	"testing"
	"time"
)

func TestNotifierDismissesAfterFourSeconds(t *testing.T) {
	notify := NewNotifier(discardLogger)

	var dismiss func()
	notify.after = func(d time.Duration, f func()) *time.Timer {
		if d != 4*time.Second {
			t.Errorf("dismiss delay = %v, want 4s", d)
		}
		dismiss = f
		return nil
	}

	notify.Success("cliente guardado")
	if notes := notify.Active(); len(notes) != 1 || notes[0].Level != LevelSuccess {
		t.Fatalf("expected one success notification, got %v", notes)
	}

	dismiss()
	if notes := notify.Active(); len(notes) != 0 {
		t.Fatalf("notification should be gone after the delay, got %v", notes)
	}
}

func TestNotifierKeepsNewerNotificationsWhenOneDismisses(t *testing.T) {
	notify := NewNotifier(discardLogger)

	var dismissals []func()
	notify.after = func(d time.Duration, f func()) *time.Timer {
		dismissals = append(dismissals, f)
		return nil
	}

	notify.Error("carga fallida")
	notify.Success("cliente guardado")

	dismissals[0]()
	notes := notify.Active()
	if len(notes) != 1 || notes[0].Message != "cliente guardado" {
		t.Fatalf("only the first notification should have dismissed, got %v", notes)
	}
}
