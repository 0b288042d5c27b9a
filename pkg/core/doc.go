// Package core provides the widget and element framework interfaces and lifecycle.
//
// This package defines the foundational types for composing reactive UI
// configuration trees: Widget, Element, State, and BuildContext. It follows a
// declarative model where widgets describe what the tree should look like and
// the framework updates the mounted elements to match. There is no layout,
// painting, or animation scheduling here; elements carry configuration only
// and the host renderer consumes it.
//
// # Core Types
//
// Widget is an immutable description of part of the UI. Widgets are lightweight
// configuration objects that can be created frequently without performance
// concerns.
//
// Element is the instantiation of a Widget at a particular location in the
// tree. Elements manage the lifecycle and identity of widgets.
//
// # Stateful Widgets
//
// For widgets that need mutable state, embed StateBase in your state struct:
//
//	type myState struct {
//	    core.StateBase
//	    count int
//	}
//
//	func (s *myState) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.Label{Content: fmt.Sprintf("Count: %d", s.count)}
//	}
//
// # Inherited Widgets
//
// InheritedWidget propagates a value to a whole subtree without explicit
// forwarding through intermediate widgets. Descendants resolve the nearest
// enclosing instance with BuildContext.DependOnInherited and rebuild when it
// changes. conduct.Conductor uses this mechanism to publish its style scope.
//
// # Constructor Conventions
//
// Controllers and other long-lived mutable objects use NewX() constructors
// returning pointers:
//
//	ctrl := conduct.NewController()
//
// Immutable configuration objects (widgets) use struct literals.
package core
