package style

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-stagehand/stagehand/pkg/errors"
)

// Sheet maps an animation-key to the style bundle published under that key.
// Keys are opaque strings; a conductor replaces its sheet wholesale on every
// build, so sheets are treated as immutable values once handed off.
type Sheet map[string]List

// Keys returns the sheet's animation-keys in sorted order.
func (s Sheet) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup returns the style bundle for key.
func (s Sheet) Lookup(key string) (List, bool) {
	list, ok := s[key]
	return list, ok
}

// Merge returns a new sheet with other's entries laid over s. Keys present in
// both take other's value wholesale; bundles are not concatenated.
func (s Sheet) Merge(other Sheet) Sheet {
	out := make(Sheet, len(s)+len(other))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// ParseSheet decodes a cue sheet from YAML. The document is a mapping from
// animation-key to a style mapping or a sequence of style mappings:
//
//	fadeIn:
//	  opacity: 1
//	slideUp:
//	  - translateY: -24
//	  - opacity: 1
func ParseSheet(data []byte) (Sheet, error) {
	var sheet Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, &errors.Error{
			Op:   "style.ParseSheet",
			Kind: errors.KindSheet,
			Err:  err,
		}
	}
	if err := sheet.Validate(); err != nil {
		return nil, err
	}
	return sheet, nil
}

// LoadSheet reads and parses a cue sheet file.
func LoadSheet(path string) (Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.Error{
			Op:   "style.LoadSheet",
			Kind: errors.KindSheet,
			Err:  err,
			Path: path,
		}
	}
	sheet, err := ParseSheet(data)
	if err != nil {
		if serr, ok := err.(*errors.Error); ok {
			serr.Path = path
		}
		return nil, err
	}
	return sheet, nil
}

// Validate checks structural invariants: no empty or blank keys, no empty
// bundles. Parse-level shape errors surface during unmarshalling.
func (s Sheet) Validate() error {
	for key, list := range s {
		if strings.TrimSpace(key) == "" {
			return &errors.Error{
				Op:   "style.Sheet.Validate",
				Kind: errors.KindSheet,
				Err:  fmt.Errorf("blank animation-key"),
			}
		}
		if len(list) == 0 {
			return &errors.Error{
				Op:   "style.Sheet.Validate",
				Kind: errors.KindSheet,
				Err:  fmt.Errorf("key %q has an empty style bundle", key),
			}
		}
	}
	return nil
}
