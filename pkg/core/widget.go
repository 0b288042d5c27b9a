package core

import "reflect"

// Widget is an immutable description of part of the UI. Widgets are cheap
// configuration objects; the framework instantiates an Element to give a
// widget identity and lifecycle at a location in the tree.
type Widget interface {
	// CreateElement instantiates the element that will host this widget.
	CreateElement() Element
	// Key identifies the widget for reconciliation. Nil means unkeyed.
	Key() any
}

// StatelessWidget describes UI purely from its own configuration.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget owns mutable state held in a State object.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State holds mutable state for a StatefulWidget and builds its subtree.
type State interface {
	// InitState is called once after the state is attached to its element.
	InitState()
	// Build returns the widget subtree for the current state.
	Build(ctx BuildContext) Widget
	// DidChangeDependencies is called when an inherited widget this state
	// depends on notifies a change.
	DidChangeDependencies()
	// DidUpdateWidget is called when the element receives a new widget
	// configuration of the same type.
	DidUpdateWidget(oldWidget StatefulWidget)
	// Dispose releases resources. Called when the element unmounts.
	Dispose()
}

// InheritedWidget propagates a value to its entire descendant subtree.
// Descendants resolve the nearest enclosing instance with
// [BuildContext.DependOnInherited] and are rebuilt when UpdateShouldNotify
// reports a change.
type InheritedWidget interface {
	Widget
	// Child returns the subtree the inherited value is scoped to.
	Child() Widget
	// UpdateShouldNotify reports whether dependents must rebuild after the
	// widget was replaced by a new configuration.
	UpdateShouldNotify(old InheritedWidget) bool
}

// MultiChildWidget hosts an ordered list of children.
type MultiChildWidget interface {
	Widget
	Children() []Widget
}

// BuildContext is the element-side view handed to Build methods.
type BuildContext interface {
	// Widget returns the widget currently hosted at this location.
	Widget() Widget
	// DependOnInherited walks up to the nearest InheritedWidget of the given
	// type, registers this element as a dependent, and returns the widget.
	// Returns nil if no such ancestor exists.
	DependOnInherited(inheritedType reflect.Type) any
	// FindAncestor walks up the tree and returns the first ancestor element
	// satisfying the predicate, or nil.
	FindAncestor(predicate func(Element) bool) Element
}

// Element is the instantiation of a Widget at a particular location in the
// tree. Elements manage lifecycle and identity.
type Element interface {
	BuildContext
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	RebuildIfNeeded()
	MarkNeedsBuild()
	VisitChildren(visitor func(Element) bool)
	Depth() int
}

// Disposable releases resources when no longer needed.
type Disposable interface {
	Dispose()
}

// Listenable notifies registered listeners of changes.
// AddListener returns an unsubscribe function.
type Listenable interface {
	AddListener(listener func()) func()
}
