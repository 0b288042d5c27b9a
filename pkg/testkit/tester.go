// Package testkit provides isolated widget testing for stagehand trees.
package testkit

import (
	"errors"
	"testing"

	"github.com/go-stagehand/stagehand/pkg/core"
)

// ErrSettleTimeout is returned when Settle exceeds its pass budget.
var ErrSettleTimeout = errors.New("Settle exceeded pass budget: tree did not settle")

// ComponentTester drives the same build phases as a live embedder, without a
// renderer. Widgets are mounted into a real element tree, rebuilt through the
// BuildOwner, and inspected with finders.
type ComponentTester struct {
	buildOwner *core.BuildOwner
	root       core.Element
	dispatches []func()
}

// NewComponentTester creates a tester. Call Cleanup() when done, or use
// NewComponentTesterWithT() instead.
func NewComponentTester() *ComponentTester {
	return &ComponentTester{
		buildOwner: core.NewBuildOwner(),
	}
}

// NewComponentTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewComponentTesterWithT(t *testing.T) *ComponentTester {
	tester := NewComponentTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree.
func (t *ComponentTester) Cleanup() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
}

// PumpWidget mounts (or remounts) a widget and flushes one build pass.
func (t *ComponentTester) PumpWidget(widget core.Widget) {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
	t.root = core.MountRoot(widget, t.buildOwner)
	t.Pump()
}

// Pump runs a single frame cycle: queued dispatches, then a build flush.
func (t *ComponentTester) Pump() {
	dispatches := t.dispatches
	t.dispatches = nil
	for _, fn := range dispatches {
		fn()
	}
	t.buildOwner.FlushBuild()
}

// Settle pumps until the tree is idle, up to maxPasses frames.
// Returns ErrSettleTimeout if work remains after the budget is spent.
func (t *ComponentTester) Settle(maxPasses int) error {
	for pass := 0; pass < maxPasses; pass++ {
		t.Pump()
		if !t.needsWork() {
			return nil
		}
	}
	return ErrSettleTimeout
}

func (t *ComponentTester) needsWork() bool {
	return t.buildOwner.NeedsWork() || len(t.dispatches) > 0
}

// Dispatch queues a callback for the next frame.
func (t *ComponentTester) Dispatch(fn func()) {
	t.dispatches = append(t.dispatches, fn)
}

// RootElement returns the root element of the mounted tree.
func (t *ComponentTester) RootElement() core.Element {
	return t.root
}

// Find evaluates a finder against the current element tree.
func (t *ComponentTester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(t.root),
		finder:   finder,
	}
}
