package widgets

import "github.com/go-stagehand/stagehand/pkg/core"

// Group hosts an ordered list of children without adding styling of its own.
type Group struct {
	ChildWidgets []core.Widget
	// WidgetKey identifies the group for reconciliation and finders.
	WidgetKey any
}

// GroupOf returns a group wrapping the given children.
func GroupOf(children ...core.Widget) Group {
	return Group{ChildWidgets: children}
}

func (g Group) CreateElement() core.Element {
	return core.NewMultiChildElement(g, nil)
}

func (g Group) Key() any {
	return g.WidgetKey
}

func (g Group) Children() []core.Widget {
	return g.ChildWidgets
}
