package conduct

import (
	"fmt"
	"sync"

	"github.com/go-stagehand/stagehand/pkg/core"
	"github.com/go-stagehand/stagehand/pkg/errors"
)

// DiagnosticKind identifies a tolerated-but-notable event.
type DiagnosticKind int

const (
	// DiagMissingScope means a Performer built without an enclosing Conductor.
	DiagMissingScope DiagnosticKind = iota
	// DiagMissingKey means a Performer's key was absent from the sheet.
	DiagMissingKey
	// DiagUnstyledChild means a Performer's child does not accept style injection.
	DiagUnstyledChild
	// DiagDroppedCallback means FireCallback found no handler for the key.
	DiagDroppedCallback
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagMissingScope:
		return "missing scope"
	case DiagMissingKey:
		return "missing key"
	case DiagUnstyledChild:
		return "unstyled child"
	case DiagDroppedCallback:
		return "dropped callback"
	default:
		return "unknown"
	}
}

// Diagnostic describes one tolerated event. All of these are silent no-ops
// at the API level; they only affect what gets observed or logged.
type Diagnostic struct {
	Kind DiagnosticKind
	// Key is the animation-key involved, if any.
	Key string
	// Widget is the type name of the widget involved, if any.
	Widget string
}

func (d Diagnostic) message() string {
	if d.Widget != "" {
		return fmt.Sprintf("%s: key %q (widget %s)", d.Kind, d.Key, d.Widget)
	}
	return fmt.Sprintf("%s: key %q", d.Kind, d.Key)
}

var (
	diagMu   sync.RWMutex
	diagHook func(Diagnostic)
)

// SetDiagnostics installs a hook receiving missing-key, missing-scope,
// unstyled-child, and dropped-callback events. Pass nil to remove the hook.
// While a hook is installed it replaces the default debug logging.
func SetDiagnostics(hook func(Diagnostic)) {
	diagMu.Lock()
	defer diagMu.Unlock()
	diagHook = hook
}

// reportDiagnostic delivers d to the installed hook. Without a hook, debug
// builds log through the error handler; release embedders that called
// core.SetDebugMode(false) stay fully silent.
func reportDiagnostic(d Diagnostic) {
	diagMu.RLock()
	hook := diagHook
	diagMu.RUnlock()
	if hook != nil {
		hook(d)
		return
	}
	if core.DebugMode {
		errors.Report(&errors.Error{
			Op:   "conduct.diagnostic",
			Kind: errors.KindConduct,
			Err:  fmt.Errorf("%s", d.message()),
		})
	}
}
