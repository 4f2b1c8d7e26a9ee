package report

import (
	"fmt"
	"sync"
	"time"
)

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all lowering messages to the user (default).
)

// LogLevelFromString maps a log-level name to its enumerated value.  Unknown
// names map to the default verbose level.
func LogLevelFromString(name string) int {
	switch name {
	case "silent":
		return LogLevelSilent
	case "error":
		return LogLevelError
	case "warn":
		return LogLevelWarn
	default:
		return LogLevelVerbose
	}
}

// PhaseSink is implemented by sinks that also render phase progress.  Sinks
// without it never see phase lines.
type PhaseSink interface {
	Sink

	// StartPhase announces that the named phase has begun running.
	StartPhase(name string)

	// EndPhase announces that the named phase finished, with its elapsed
	// wall-clock time.
	EndPhase(name string, elapsed time.Duration)
}

// Reporter is responsible for delivering diagnostics produced during lowering
// to the configured sink.  The reporter respects the set log level and is
// synchronized: separate pipeline instances running over independent modules
// may share one reporter.
type Reporter struct {
	// The mutex used to synchronize report calls.
	m sync.Mutex

	// The sink diagnostics are delivered to.
	sink Sink

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels above.
	logLevel int

	// The name of the phase currently running, if any.
	phase string

	// The time the current phase started.
	phaseStart time.Time

	// The number of error-severity diagnostics reported so far.
	errorCount int

	// The number of warning-severity diagnostics reported so far.
	warnCount int
}

// NewReporter creates a new reporter delivering to the given sink.  A nil sink
// is replaced by a DiscardSink.  The reporter starts at the verbose log level.
func NewReporter(sink Sink) *Reporter {
	if sink == nil {
		sink = DiscardSink{}
	}

	return &Reporter{sink: sink, logLevel: LogLevelVerbose}
}

// SetLogLevel sets the reporter's log level.
func (r *Reporter) SetLogLevel(logLevel int) {
	r.m.Lock()
	defer r.m.Unlock()

	r.logLevel = logLevel
}

// Report delivers a fully-formed diagnostic to the sink.  Diagnostics below
// the log level still count toward the run's totals but are not delivered.
func (r *Reporter) Report(d *Diagnostic) {
	r.m.Lock()
	defer r.m.Unlock()

	if d.Severity == SeverityError {
		r.errorCount++
		if r.logLevel >= LogLevelError {
			r.sink.Report(d)
		}
	} else {
		r.warnCount++
		if r.logLevel >= LogLevelWarn {
			r.sink.Report(d)
		}
	}
}

// StartPhase announces the named phase to the sink.  Phase progress only
// displays at the verbose level.
func (r *Reporter) StartPhase(name string) {
	r.m.Lock()
	defer r.m.Unlock()

	r.phase = name
	r.phaseStart = time.Now()

	if r.logLevel == LogLevelVerbose {
		if ps, ok := r.sink.(PhaseSink); ok {
			ps.StartPhase(name)
		}
	}
}

// EndPhase announces that the current phase finished, with its elapsed time.
func (r *Reporter) EndPhase() {
	r.m.Lock()
	defer r.m.Unlock()

	if r.phase == "" {
		return
	}

	if r.logLevel == LogLevelVerbose {
		if ps, ok := r.sink.(PhaseSink); ok {
			ps.EndPhase(r.phase, time.Since(r.phaseStart))
		}
	}

	r.phase = ""
}

// Errorf reports a general error diagnostic with a formatted message.
func (r *Reporter) Errorf(span *TextSpan, msg string, args ...interface{}) {
	r.Report(&Diagnostic{
		Severity: SeverityError,
		Kind:     KindGeneral,
		Message:  fmt.Sprintf(msg, args...),
		Span:     span,
	})
}

// Warningf reports a warning diagnostic with a formatted message.
func (r *Reporter) Warningf(span *TextSpan, msg string, args ...interface{}) {
	r.Report(&Diagnostic{
		Severity: SeverityWarning,
		Kind:     KindGeneral,
		Message:  fmt.Sprintf(msg, args...),
		Span:     span,
	})
}

// AnyErrors returns whether any error-severity diagnostics were reported.
func (r *Reporter) AnyErrors() bool {
	r.m.Lock()
	defer r.m.Unlock()

	return r.errorCount > 0
}

// ErrorCount returns the number of error-severity diagnostics reported.
func (r *Reporter) ErrorCount() int {
	r.m.Lock()
	defer r.m.Unlock()

	return r.errorCount
}
