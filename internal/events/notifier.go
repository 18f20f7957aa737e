package events

import (
	"errors"

	"github.com/markusressel/plant2go/internal/ui"
)

// Notifier is a best-effort side channel for operator notifications
type Notifier interface {
	Send(message string) error
}

type NotifierFunc func(message string) error

func (f NotifierFunc) Send(message string) error {
	return f(message)
}

// NopNotifier discards all messages
type NopNotifier struct{}

func (NopNotifier) Send(string) error {
	return nil
}

// ConsoleNotifier prints notifications as console warnings
type ConsoleNotifier struct{}

func (ConsoleNotifier) Send(message string) error {
	ui.Warning("%s", message)
	return nil
}

// MultiNotifier sends each message to all of its notifiers,
// a failing notifier does not prevent delivery to the others
type MultiNotifier []Notifier

func (m MultiNotifier) Send(message string) error {
	var errs []error
	for _, notifier := range m {
		if err := notifier.Send(message); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
