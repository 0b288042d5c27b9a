package widgets

import (
	"github.com/go-stagehand/stagehand/pkg/core"
	"github.com/go-stagehand/stagehand/pkg/style"
)

// Spacer is an empty leaf that reserves space between siblings. Like Box and
// Label it accepts style injection, so a cue can drive its size.
type Spacer struct {
	// Style is the spacer's own base style, usually just Width or Height.
	Style style.Style
	// Styles holds records appended after the base style.
	Styles style.List
	// WidgetKey identifies the spacer for reconciliation and finders.
	WidgetKey any
}

// VSpace returns a fixed-height vertical spacer.
func VSpace(height float64) Spacer {
	return Spacer{Style: style.Style{Height: style.Ptr(height)}}
}

// HSpace returns a fixed-width horizontal spacer.
func HSpace(width float64) Spacer {
	return Spacer{Style: style.Style{Width: style.Ptr(width)}}
}

func (s Spacer) CreateElement() core.Element {
	return core.NewStatelessElement(s, nil)
}

func (s Spacer) Key() any {
	return s.WidgetKey
}

func (s Spacer) Build(ctx core.BuildContext) core.Widget {
	return nil
}

// ApplyStyle appends the given records after the spacer's current styles.
func (s Spacer) ApplyStyle(list style.List) core.Widget {
	s.Styles = s.Styles.Append(list...)
	return s
}

// Resolved returns the effective style with appended records merged over the
// base style.
func (s Spacer) Resolved() style.Style {
	return append(style.List{s.Style}, s.Styles...).Flatten()
}
