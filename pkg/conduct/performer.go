package conduct

import (
	"reflect"

	"github.com/go-stagehand/stagehand/pkg/core"
	"github.com/go-stagehand/stagehand/pkg/style"
)

// Performer binds one child widget to an animation-key. The bundle published
// under that key by the nearest enclosing Conductor is appended to the
// child's own styles; the child must accept style injection ([style.Styled]).
// If no Conductor encloses the Performer, or the key is absent from the
// sheet, the child renders with only its own styles.
//
// An optional OnCallback handler is registered under the same key for the
// lifetime of the mount, re-registered when the key changes, and removed on
// unmount.
type Performer struct {
	// AnimationKey selects the bundle and callback slot. Keys need not be
	// unique; every Performer bound to a key receives the same bundle.
	AnimationKey string
	// OnCallback, if set, is invocable through the conductor's Controller.
	OnCallback func(args ...any)
	// ChildWidget is the single wrapped child.
	ChildWidget core.Widget
}

func (p Performer) CreateElement() core.Element {
	return core.NewStatefulElement(p, nil)
}

func (p Performer) Key() any {
	return nil
}

func (p Performer) CreateState() core.State {
	return &performerState{}
}

type performerState struct {
	core.StateBase
	registeredKey string
	unregister    func()
}

func (s *performerState) InitState() {
	s.register()
}

func (s *performerState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	old := oldWidget.(Performer)
	next := s.widget()

	keyChanged := old.AnimationKey != next.AnimationKey
	presenceChanged := (old.OnCallback == nil) != (next.OnCallback == nil)
	if !keyChanged && !presenceChanged {
		// The registered trampoline always invokes the current widget's
		// handler, so handler identity changes need no re-registration.
		return
	}
	s.deregister()
	s.register()
}

func (s *performerState) Dispose() {
	s.deregister()
	s.StateBase.Dispose()
}

func (s *performerState) Build(ctx core.BuildContext) core.Widget {
	w := s.widget()
	child := w.ChildWidget

	scope := ScopeOf(ctx)
	if scope == nil {
		reportDiagnostic(Diagnostic{
			Kind:   DiagMissingScope,
			Key:    w.AnimationKey,
			Widget: widgetTypeName(child),
		})
		return child
	}

	list, ok := scope.LookupStyle(w.AnimationKey)
	if !ok {
		reportDiagnostic(Diagnostic{Kind: DiagMissingKey, Key: w.AnimationKey})
		return child
	}

	styled, ok := child.(style.Styled)
	if !ok {
		reportDiagnostic(Diagnostic{
			Kind:   DiagUnstyledChild,
			Key:    w.AnimationKey,
			Widget: widgetTypeName(child),
		})
		return child
	}
	return styled.ApplyStyle(list)
}

func (s *performerState) widget() Performer {
	return s.Element().Widget().(Performer)
}

// register binds a trampoline under the current key so the handler invoked
// is always the one on the widget configuration of the moment.
func (s *performerState) register() {
	w := s.widget()
	if w.OnCallback == nil {
		return
	}
	scope := ScopeOf(s.Element())
	if scope == nil {
		return
	}
	key := w.AnimationKey
	s.registeredKey = key
	s.unregister = scope.RegisterCallback(key, func(args ...any) {
		if current := s.widget(); current.OnCallback != nil {
			current.OnCallback(args...)
		}
	})
}

func (s *performerState) deregister() {
	if s.unregister != nil {
		s.unregister()
		s.unregister = nil
	}
	s.registeredKey = ""
}

func widgetTypeName(w core.Widget) string {
	if w == nil {
		return "<nil>"
	}
	return reflect.TypeOf(w).String()
}
