package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/markusressel/plant2go/internal/ui"
)

var ErrSinkUnavailable = errors.New("sink unavailable")

// Sink is a persistence target for event records
type Sink interface {
	// Name identifies the sink, flush progress is tracked per name
	Name() string
	Write(ctx context.Context, records []Record) error
}

// Replacer is implemented by sinks whose Write replaces everything written before.
// Flush always hands the complete log to them.
type Replacer interface {
	Replaces() bool
}

func replaces(sink Sink) bool {
	r, ok := sink.(Replacer)
	return ok && r.Replaces()
}

// Log is an ordered, append-only record of events.
// It is safe for concurrent use.
type Log struct {
	mu       sync.RWMutex
	records  []Record
	cursors  map[string]int
	notifier Notifier
	clock    func() time.Time
}

type Option func(l *Log)

func WithNotifier(notifier Notifier) Option {
	return func(l *Log) {
		l.notifier = notifier
	}
}

func WithClock(clock func() time.Time) Option {
	return func(l *Log) {
		l.clock = clock
	}
}

func NewLog(options ...Option) *Log {
	l := &Log{
		cursors:  map[string]int{},
		notifier: NopNotifier{},
		clock:    time.Now,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

// Record appends an informational message
func (l *Log) Record(message string) {
	l.RecordKind(KindInfo, message)
}

func (l *Log) Recordf(format string, a ...interface{}) {
	l.RecordKind(KindInfo, fmt.Sprintf(format, a...))
}

// RecordKind appends a message with the given kind
func (l *Log) RecordKind(kind Kind, message string) Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	record := Record{
		Sequence:  uint64(len(l.records) + 1),
		Timestamp: l.clock(),
		Kind:      kind,
		Message:   message,
	}
	l.records = append(l.records, record)
	ui.Debug("%s", record.String())
	return record
}

// Notify dispatches the message to the notification channel.
// Delivery is best effort, failures are only logged.
func (l *Log) Notify(message string) {
	err := l.notifier.Send(message)
	if err != nil {
		ui.Warning("Unable to send notification '%s': %v", message, err)
	}
}

// Entries returns a copy of all records in append order
func (l *Log) Entries() []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]Record, len(l.records))
	copy(result, l.records)
	return result
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// Flush writes all records appended since the last successful flush to the given sink,
// or all records if the sink is a Replacer.
// If the sink fails, nothing is marked as flushed and the next flush retries the same records.
func (l *Log) Flush(ctx context.Context, sink Sink) error {
	l.mu.RLock()
	cursor := l.cursors[sink.Name()]
	if replaces(sink) && cursor < len(l.records) {
		cursor = 0
	}
	pending := make([]Record, len(l.records)-cursor)
	copy(pending, l.records[cursor:])
	l.mu.RUnlock()

	if len(pending) <= 0 {
		return nil
	}

	if err := write(ctx, sink, pending); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if end := cursor + len(pending); end > l.cursors[sink.Name()] {
		l.cursors[sink.Name()] = end
	}
	return nil
}

// Export writes every record to the given sink, regardless of previous flushes
func (l *Log) Export(ctx context.Context, sink Sink) error {
	return write(ctx, sink, l.Entries())
}

func write(ctx context.Context, sink Sink, records []Record) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSinkUnavailable, sink.Name(), err)
	}
	if err := sink.Write(ctx, records); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSinkUnavailable, sink.Name(), err)
	}
	return nil
}
