package adapter

import (
	"log/slog"
	"sync"

	m "classmark.dev/pkg/classmark/internal/model"
)

// DiagnosticSink accepts severity-tagged messages from the interception
// layer. It is injected at session construction so the core has no hidden
// global reporting state.
type DiagnosticSink interface {
	Report(severity m.Severity, message string)
}

// SlogSink forwards diagnostics to the process logger.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink constructs a SlogSink. With a nil logger it follows
// slog.Default, picking up whatever handler the CLI configures at startup.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	return &SlogSink{logger: logger}
}

func (s *SlogSink) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}

	return slog.Default()
}

// Report maps severities onto slog levels.
func (s *SlogSink) Report(severity m.Severity, message string) {
	switch severity {
	case m.SeverityLog:
		s.log().Debug(message)
	case m.SeverityInfo:
		s.log().Info(message)
	case m.SeverityWarning:
		s.log().Warn(message)
	case m.SeverityError:
		s.log().Error(message)
	}
}

// CollectingSink records diagnostics in memory. Tests use it to assert on
// what the interception layer reported.
type CollectingSink struct {
	mu          sync.Mutex
	diagnostics []m.Diagnostic
}

// NewCollectingSink constructs an empty CollectingSink.
func NewCollectingSink() *CollectingSink {
	return &CollectingSink{}
}

// Report appends the message to the collected diagnostics.
func (s *CollectingSink) Report(severity m.Severity, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.diagnostics = append(s.diagnostics, m.Diagnostic{Severity: severity, Message: message})
}

// Diagnostics returns a copy of everything reported so far.
func (s *CollectingSink) Diagnostics() []m.Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]m.Diagnostic, len(s.diagnostics))
	copy(snapshot, s.diagnostics)

	return snapshot
}
