// Package style defines flat style records, their merge semantics, and
// YAML cue sheets mapping animation-keys to style bundles.
package style

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// EdgeInsets describes offsets from the four edges of a box.
type EdgeInsets struct {
	Left   float64 `yaml:"left,omitempty"`
	Top    float64 `yaml:"top,omitempty"`
	Right  float64 `yaml:"right,omitempty"`
	Bottom float64 `yaml:"bottom,omitempty"`
}

// EdgeInsetsAll returns insets with the same value on every edge.
func EdgeInsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Left: value, Top: value, Right: value, Bottom: value}
}

// EdgeInsetsSymmetric returns insets with horizontal and vertical values.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// Horizontal returns the sum of left and right insets.
func (e EdgeInsets) Horizontal() float64 { return e.Left + e.Right }

// Vertical returns the sum of top and bottom insets.
func (e EdgeInsets) Vertical() float64 { return e.Top + e.Bottom }

// UnmarshalYAML accepts either a scalar (applied to all edges) or a mapping
// with left/top/right/bottom keys.
func (e *EdgeInsets) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var all float64
		if err := value.Decode(&all); err != nil {
			return fmt.Errorf("insets must be a number or mapping: %w", err)
		}
		*e = EdgeInsetsAll(all)
		return nil
	}
	type plain EdgeInsets
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*e = EdgeInsets(p)
	return nil
}

// Style is a flat record of optional visual fields. Nil fields are unset and
// leave the receiving widget's own value in place; set fields override it.
// Field names follow the mobile styling vocabulary the records originate from.
type Style struct {
	Opacity         *float64    `yaml:"opacity,omitempty"`
	Color           *Color      `yaml:"color,omitempty"`
	BackgroundColor *Color      `yaml:"backgroundColor,omitempty"`
	Width           *float64    `yaml:"width,omitempty"`
	Height          *float64    `yaml:"height,omitempty"`
	Padding         *EdgeInsets `yaml:"padding,omitempty"`
	Margin          *EdgeInsets `yaml:"margin,omitempty"`
	TranslateX      *float64    `yaml:"translateX,omitempty"`
	TranslateY      *float64    `yaml:"translateY,omitempty"`
	Scale           *float64    `yaml:"scale,omitempty"`
	Rotate          *float64    `yaml:"rotate,omitempty"`
	BorderColor     *Color      `yaml:"borderColor,omitempty"`
	BorderWidth     *float64    `yaml:"borderWidth,omitempty"`
	BorderRadius    *float64    `yaml:"borderRadius,omitempty"`
	FontSize        *float64    `yaml:"fontSize,omitempty"`
}

// Ptr returns a pointer to v, for building Style literals.
func Ptr[T any](v T) *T { return &v }

// IsZero reports whether no field is set.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Merge returns the field-wise merge of s and other. Fields set in other win;
// fields unset in other keep the value from s.
func (s Style) Merge(other Style) Style {
	out := s
	if other.Opacity != nil {
		out.Opacity = other.Opacity
	}
	if other.Color != nil {
		out.Color = other.Color
	}
	if other.BackgroundColor != nil {
		out.BackgroundColor = other.BackgroundColor
	}
	if other.Width != nil {
		out.Width = other.Width
	}
	if other.Height != nil {
		out.Height = other.Height
	}
	if other.Padding != nil {
		out.Padding = other.Padding
	}
	if other.Margin != nil {
		out.Margin = other.Margin
	}
	if other.TranslateX != nil {
		out.TranslateX = other.TranslateX
	}
	if other.TranslateY != nil {
		out.TranslateY = other.TranslateY
	}
	if other.Scale != nil {
		out.Scale = other.Scale
	}
	if other.Rotate != nil {
		out.Rotate = other.Rotate
	}
	if other.BorderColor != nil {
		out.BorderColor = other.BorderColor
	}
	if other.BorderWidth != nil {
		out.BorderWidth = other.BorderWidth
	}
	if other.BorderRadius != nil {
		out.BorderRadius = other.BorderRadius
	}
	if other.FontSize != nil {
		out.FontSize = other.FontSize
	}
	return out
}

// List is an ordered sequence of style records. A style-value bound to an
// animation-key is either a single record or a sequence; both are represented
// as a List. Later entries win on conflicting fields.
type List []Style

// Flatten folds the list left to right into a single record.
func (l List) Flatten() Style {
	var out Style
	for _, s := range l {
		out = out.Merge(s)
	}
	return out
}

// Append returns a new list with the given records appended.
func (l List) Append(styles ...Style) List {
	out := make(List, 0, len(l)+len(styles))
	out = append(out, l...)
	out = append(out, styles...)
	return out
}

// UnmarshalYAML accepts either a single style mapping or a sequence of
// style mappings.
func (l *List) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var styles []Style
		if err := value.Decode(&styles); err != nil {
			return err
		}
		*l = styles
		return nil
	case yaml.MappingNode:
		var single Style
		if err := value.Decode(&single); err != nil {
			return err
		}
		*l = List{single}
		return nil
	default:
		return fmt.Errorf("style value must be a mapping or a sequence of mappings (line %d)", value.Line)
	}
}
