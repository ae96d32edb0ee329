package model

// Severity ranks diagnostic messages emitted while processing classes.
type Severity int

// Available Severity values, lowest first.
const (
	// SeverityLog is chatter about routine decisions, such as a method
	// being marked.
	SeverityLog Severity = iota
	// SeverityInfo is user-facing progress information.
	SeverityInfo
	// SeverityWarning flags suspicious but non-fatal conditions.
	SeverityWarning
	// SeverityError flags failures that abort the build.
	SeverityError
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityLog:
		return "log"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}

	return "unknown"
}

// Diagnostic is a severity-tagged message produced during interception.
type Diagnostic struct {
	Severity Severity
	Message  string
}
