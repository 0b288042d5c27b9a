package conduct

import (
	"github.com/go-stagehand/stagehand/pkg/core"
	"github.com/go-stagehand/stagehand/pkg/style"
)

// Conductor wraps a subtree and distributes its style sheet to every
// Performer below it. The sheet is republished wholesale on every build;
// there is no incremental mutation. An optional Controller gives the holder
// the ability to fire callbacks registered by descendants.
type Conductor struct {
	// Styles maps animation-keys to the bundles Performers resolve.
	Styles style.Sheet
	// Controller, if set, is attached for the conductor's mounted lifetime.
	Controller *Controller
	// ChildWidget is the subtree the sheet is scoped to.
	ChildWidget core.Widget
}

func (c Conductor) CreateElement() core.Element {
	return core.NewStatefulElement(c, nil)
}

func (c Conductor) Key() any {
	return nil
}

func (c Conductor) CreateState() core.State {
	return &conductorState{}
}

// callbackRegistration tokens let a stale unregister (an older Performer
// unmounting) leave a newer binding for the same key untouched.
type callbackRegistration struct {
	handler func(args ...any)
}

// conductorState owns the callback registry for the mounted lifetime of the
// subtree and implements Scope for its descendants.
type conductorState struct {
	core.StateBase
	callbacks map[string]*callbackRegistration
}

var _ Scope = (*conductorState)(nil)

func (s *conductorState) InitState() {
	s.callbacks = make(map[string]*callbackRegistration)
	if ctrl := s.widget().Controller; ctrl != nil {
		ctrl.attach(s)
	}
}

func (s *conductorState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	old := oldWidget.(Conductor)
	next := s.widget()
	if old.Controller == next.Controller {
		return
	}
	if old.Controller != nil {
		old.Controller.detach(s)
	}
	if next.Controller != nil {
		next.Controller.attach(s)
	}
}

func (s *conductorState) Dispose() {
	if ctrl := s.widget().Controller; ctrl != nil {
		ctrl.detach(s)
	}
	s.callbacks = nil
	s.StateBase.Dispose()
}

func (s *conductorState) Build(ctx core.BuildContext) core.Widget {
	w := s.widget()
	return scopeWidget{
		scope:       s,
		sheet:       w.Styles,
		childWidget: w.ChildWidget,
	}
}

func (s *conductorState) widget() Conductor {
	return s.Element().Widget().(Conductor)
}

// LookupStyle resolves key against the sheet of the current build.
func (s *conductorState) LookupStyle(key string) (style.List, bool) {
	return s.widget().Styles.Lookup(key)
}

// RegisterCallback binds handler under key. The latest registration for a
// key wins; unregistering a replaced binding is a no-op.
func (s *conductorState) RegisterCallback(key string, handler func(args ...any)) func() {
	if s.callbacks == nil || handler == nil {
		return func() {}
	}
	reg := &callbackRegistration{handler: handler}
	s.callbacks[key] = reg
	return func() {
		if s.callbacks != nil && s.callbacks[key] == reg {
			delete(s.callbacks, key)
		}
	}
}

func (s *conductorState) fireCallback(key string, args ...any) {
	reg := s.callbacks[key]
	if reg == nil {
		reportDiagnostic(Diagnostic{Kind: DiagDroppedCallback, Key: key})
		return
	}
	reg.handler(args...)
}
