package conduct

import (
	"reflect"

	"github.com/go-stagehand/stagehand/pkg/core"
	"github.com/go-stagehand/stagehand/pkg/style"
)

// Scope exposes the nearest enclosing Conductor's registries to its subtree.
// It is the explicit injection point descendants resolve instead of reaching
// for the conductor widget itself.
type Scope interface {
	// LookupStyle returns the style bundle published under key.
	LookupStyle(key string) (style.List, bool)
	// RegisterCallback binds handler under key, replacing any current
	// binding. The returned unregister function removes the binding, but
	// only if it has not been replaced by a later registration.
	RegisterCallback(key string, handler func(args ...any)) (unregister func())
}

// scopeWidget is the inherited widget a Conductor builds to publish its
// scope to the whole descendant subtree.
type scopeWidget struct {
	scope       Scope
	sheet       style.Sheet
	childWidget core.Widget
}

func (w scopeWidget) CreateElement() core.Element {
	return core.NewInheritedElement(w, nil)
}

func (w scopeWidget) Key() any {
	return nil
}

func (w scopeWidget) Child() core.Widget {
	return w.childWidget
}

func (w scopeWidget) UpdateShouldNotify(old core.InheritedWidget) bool {
	prev, ok := old.(scopeWidget)
	if !ok {
		return true
	}
	if prev.scope != w.scope {
		return true
	}
	// Sheets are replaced wholesale on every conductor build; compare by
	// value so identical replacements don't churn dependents.
	return !reflect.DeepEqual(prev.sheet, w.sheet)
}

var scopeWidgetType = reflect.TypeOf(scopeWidget{})

// ScopeOf returns the nearest enclosing Conductor's scope and registers the
// calling element for rebuilds when the published sheet changes.
// Returns nil if there is no enclosing Conductor.
func ScopeOf(ctx core.BuildContext) Scope {
	inherited := ctx.DependOnInherited(scopeWidgetType)
	if inherited == nil {
		return nil
	}
	if w, ok := inherited.(scopeWidget); ok {
		return w.scope
	}
	return nil
}
