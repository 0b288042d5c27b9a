package style

import "github.com/go-stagehand/stagehand/pkg/core"

// Styled is implemented by widgets that accept merged style injection.
// ApplyStyle returns a copy of the widget with the given records appended
// after the widget's own styles, so injected fields win on conflict.
type Styled interface {
	core.Widget
	ApplyStyle(list List) core.Widget
}
