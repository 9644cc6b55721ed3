package notifier

import "YieldSentinel/internal/log"

// Notifier delivers a finished report.
type Notifier interface {
	Send(text string) error
}

// LogNotifier writes reports to the application log.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (n *LogNotifier) Send(text string) error {
	log.Infow("report", "text", text)
	return nil
}

// NoopNotifier discards reports.
type NoopNotifier struct{}

func NewNoopNotifier() *NoopNotifier { return &NoopNotifier{} }

func (n *NoopNotifier) Send(_ string) error { return nil }
