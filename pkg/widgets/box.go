// Package widgets provides styleable building blocks for stagehand trees.
package widgets

import (
	"github.com/go-stagehand/stagehand/pkg/core"
	"github.com/go-stagehand/stagehand/pkg/style"
)

// Box is a container widget carrying a base style plus any styles injected
// by an enclosing Performer. Injected records are appended after the base
// style, so they win on conflicting fields.
//
//	widgets.Box{
//	    Style: style.Style{
//	        BackgroundColor: style.Ptr(style.ColorWhite),
//	        Padding:         style.Ptr(style.EdgeInsetsAll(16)),
//	    },
//	    ChildWidget: widgets.Label{Content: "Hello"},
//	}
type Box struct {
	// Style is the widget's own base style.
	Style style.Style
	// Styles holds records appended after the base style, usually by
	// style injection rather than by hand.
	Styles style.List
	// ChildWidget is the optional single child.
	ChildWidget core.Widget
	// WidgetKey identifies the box for reconciliation and finders.
	WidgetKey any
}

// WithBackground returns a copy of the box with the given background color.
func (b Box) WithBackground(c style.Color) Box {
	b.Style.BackgroundColor = style.Ptr(c)
	return b
}

// WithPadding returns a copy of the box with the given padding.
func (b Box) WithPadding(insets style.EdgeInsets) Box {
	b.Style.Padding = style.Ptr(insets)
	return b
}

func (b Box) CreateElement() core.Element {
	return core.NewStatelessElement(b, nil)
}

func (b Box) Key() any {
	return b.WidgetKey
}

func (b Box) Build(ctx core.BuildContext) core.Widget {
	return b.ChildWidget
}

// ApplyStyle appends the given records after the box's current styles.
func (b Box) ApplyStyle(list style.List) core.Widget {
	b.Styles = b.Styles.Append(list...)
	return b
}

// Resolved returns the effective style: the base style with all appended
// records merged over it, later entries winning.
func (b Box) Resolved() style.Style {
	return append(style.List{b.Style}, b.Styles...).Flatten()
}
