package widgets

import (
	"github.com/go-stagehand/stagehand/pkg/core"
	"github.com/go-stagehand/stagehand/pkg/style"
)

// Label is a leaf text widget.
type Label struct {
	// Content is the text to display.
	Content string
	// Style is the label's own base style.
	Style style.Style
	// Styles holds records appended after the base style.
	Styles style.List
	// WidgetKey identifies the label for reconciliation and finders.
	WidgetKey any
}

// LabelOf returns a label with the given content and style.
func LabelOf(content string, s style.Style) Label {
	return Label{Content: content, Style: s}
}

func (l Label) CreateElement() core.Element {
	return core.NewStatelessElement(l, nil)
}

func (l Label) Key() any {
	return l.WidgetKey
}

func (l Label) Build(ctx core.BuildContext) core.Widget {
	return nil
}

// ApplyStyle appends the given records after the label's current styles.
func (l Label) ApplyStyle(list style.List) core.Widget {
	l.Styles = l.Styles.Append(list...)
	return l
}

// Resolved returns the effective style with appended records merged over the
// base style.
func (l Label) Resolved() style.Style {
	return append(style.List{l.Style}, l.Styles...).Flatten()
}
