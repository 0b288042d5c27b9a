package core

import (
	"reflect"
	"testing"

	"github.com/go-stagehand/stagehand/pkg/errors"
)

// leafWidget terminates a subtree.
type leafWidget struct {
	key any
	tag string
}

func (w leafWidget) CreateElement() Element { return NewStatelessElement(w, nil) }
func (w leafWidget) Key() any               { return w.key }
func (w leafWidget) Build(ctx BuildContext) Widget {
	return nil
}

// hostWidget builds whatever its closure returns.
type hostWidget struct {
	key     any
	buildFn func(ctx BuildContext) Widget
}

func (w hostWidget) CreateElement() Element { return NewStatelessElement(w, nil) }
func (w hostWidget) Key() any               { return w.key }
func (w hostWidget) Build(ctx BuildContext) Widget {
	if w.buildFn == nil {
		return nil
	}
	return w.buildFn(ctx)
}

// lifecycleWidget records every State callback into a shared log.
type lifecycleWidget struct {
	key   any
	log   *[]string
	child Widget
}

func (w lifecycleWidget) CreateElement() Element { return NewStatefulElement(w, nil) }
func (w lifecycleWidget) Key() any               { return w.key }
func (w lifecycleWidget) CreateState() State     { return &lifecycleState{} }

type lifecycleState struct {
	StateBase
}

func (s *lifecycleState) config() lifecycleWidget {
	return s.Element().Widget().(lifecycleWidget)
}

func (s *lifecycleState) InitState() {
	*s.config().log = append(*s.config().log, "init")
}

func (s *lifecycleState) Build(ctx BuildContext) Widget {
	*s.config().log = append(*s.config().log, "build")
	return s.config().child
}

func (s *lifecycleState) DidUpdateWidget(oldWidget StatefulWidget) {
	*s.config().log = append(*s.config().log, "didUpdate")
}

func (s *lifecycleState) DidChangeDependencies() {
	*s.config().log = append(*s.config().log, "didChangeDeps")
}

func (s *lifecycleState) Dispose() {
	*s.config().log = append(*s.config().log, "dispose")
	s.StateBase.Dispose()
}

func findLeaf(root Element) *StatelessElement {
	var found *StatelessElement
	var walk func(e Element) bool
	walk = func(e Element) bool {
		if el, ok := e.(*StatelessElement); ok {
			if _, isLeaf := el.Widget().(leafWidget); isLeaf {
				found = el
				return false
			}
		}
		e.VisitChildren(walk)
		return found == nil
	}
	walk(root)
	return found
}

func TestMountRoot_BuildsSubtree(t *testing.T) {
	owner := NewBuildOwner()
	root := MountRoot(hostWidget{
		buildFn: func(ctx BuildContext) Widget { return leafWidget{tag: "a"} },
	}, owner)
	if root == nil {
		t.Fatal("expected mounted root")
	}

	leaf := findLeaf(root)
	if leaf == nil {
		t.Fatal("expected leaf child to be mounted")
	}
	if leaf.Depth() != 1 {
		t.Errorf("expected leaf at depth 1, got %d", leaf.Depth())
	}
}

func TestStateLifecycle_Order(t *testing.T) {
	var log []string
	owner := NewBuildOwner()
	root := MountRoot(lifecycleWidget{log: &log}, owner)

	root.Update(lifecycleWidget{log: &log, child: leafWidget{}})
	owner.FlushBuild()
	root.Unmount()

	want := []string{"init", "build", "didUpdate", "build", "dispose"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("expected lifecycle %v, got %v", want, log)
	}
}

func TestSetState_SchedulesRebuild(t *testing.T) {
	var log []string
	owner := NewBuildOwner()
	root := MountRoot(lifecycleWidget{log: &log}, owner).(*StatefulElement)

	state := root.State().(*lifecycleState)
	state.SetState(nil)
	if !owner.NeedsWork() {
		t.Fatal("expected dirty element after SetState")
	}
	owner.FlushBuild()

	want := []string{"init", "build", "build"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("expected a second build after SetState, got %v", log)
	}
}

func TestSetState_AfterDisposeIsNoOp(t *testing.T) {
	var log []string
	owner := NewBuildOwner()
	root := MountRoot(lifecycleWidget{log: &log}, owner).(*StatefulElement)
	state := root.State().(*lifecycleState)
	root.Unmount()

	state.SetState(func() { log = append(log, "mutate") })
	owner.FlushBuild()

	want := []string{"init", "build", "dispose"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("expected no work after dispose, got %v", log)
	}
}

func TestUpdateChild_SameTypeUpdatesInPlace(t *testing.T) {
	owner := NewBuildOwner()
	child := leafWidget{tag: "a"}
	root := MountRoot(hostWidget{
		buildFn: func(ctx BuildContext) Widget { return child },
	}, owner)
	first := findLeaf(root)

	child = leafWidget{tag: "b"}
	root.MarkNeedsBuild()
	owner.FlushBuild()
	second := findLeaf(root)

	if first != second {
		t.Error("expected the same element to be reused for a same-type widget")
	}
	if second.Widget().(leafWidget).tag != "b" {
		t.Errorf("expected updated configuration, got %q", second.Widget().(leafWidget).tag)
	}
}

func TestUpdateChild_KeyMismatchRemounts(t *testing.T) {
	owner := NewBuildOwner()
	child := leafWidget{key: "one"}
	root := MountRoot(hostWidget{
		buildFn: func(ctx BuildContext) Widget { return child },
	}, owner)
	first := findLeaf(root)

	child = leafWidget{key: "two"}
	root.MarkNeedsBuild()
	owner.FlushBuild()
	second := findLeaf(root)

	if first == second {
		t.Error("expected a fresh element when the key changes")
	}
}

func TestUpdateChild_TypeChangeDisposesOldState(t *testing.T) {
	var log []string
	owner := NewBuildOwner()
	var child Widget = lifecycleWidget{log: &log}
	root := MountRoot(hostWidget{
		buildFn: func(ctx BuildContext) Widget { return child },
	}, owner)

	child = leafWidget{}
	root.MarkNeedsBuild()
	owner.FlushBuild()

	want := []string{"init", "build", "dispose"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("expected dispose on type change, got %v", log)
	}
}

// rowWidget hosts an ordered list of children.
type rowWidget struct {
	key      any
	children []Widget
}

func (w rowWidget) CreateElement() Element { return NewMultiChildElement(w, nil) }
func (w rowWidget) Key() any               { return w.key }
func (w rowWidget) Children() []Widget     { return w.children }

func TestMultiChildElement_SyncsChildren(t *testing.T) {
	owner := NewBuildOwner()
	root := MountRoot(rowWidget{children: []Widget{
		leafWidget{tag: "a"},
		leafWidget{tag: "b"},
		leafWidget{tag: "c"},
	}}, owner)

	count := func() int {
		n := 0
		root.VisitChildren(func(Element) bool { n++; return true })
		return n
	}
	if count() != 3 {
		t.Fatalf("expected 3 children, got %d", count())
	}

	root.Update(rowWidget{children: []Widget{leafWidget{tag: "a"}}})
	owner.FlushBuild()
	if count() != 1 {
		t.Errorf("expected trailing children unmounted, got %d", count())
	}

	root.Update(rowWidget{children: []Widget{
		leafWidget{tag: "a"},
		leafWidget{tag: "d"},
	}})
	owner.FlushBuild()
	if count() != 2 {
		t.Errorf("expected a new child appended, got %d", count())
	}
}

type captureHandler struct {
	builds []*errors.BuildError
}

func (h *captureHandler) HandleError(err *errors.Error)           {}
func (h *captureHandler) HandlePanic(err *errors.PanicError)      {}
func (h *captureHandler) HandleBuildError(err *errors.BuildError) { h.builds = append(h.builds, err) }

func TestBuildPanic_IsRecoveredAndReported(t *testing.T) {
	handler := &captureHandler{}
	errors.SetHandler(handler)
	defer errors.SetHandler(nil)

	owner := NewBuildOwner()
	root := MountRoot(hostWidget{
		buildFn: func(ctx BuildContext) Widget { panic("boom") },
	}, owner)

	if len(handler.builds) != 1 {
		t.Fatalf("expected 1 reported build error, got %d", len(handler.builds))
	}
	if handler.builds[0].Recovered != "boom" {
		t.Errorf("expected recovered value %q, got %v", "boom", handler.builds[0].Recovered)
	}

	// The failed subtree renders nothing but the tree stays alive.
	children := 0
	root.VisitChildren(func(Element) bool { children++; return true })
	if children != 0 {
		t.Errorf("expected no child after failed build, got %d", children)
	}
	root.Update(hostWidget{
		buildFn: func(ctx BuildContext) Widget { return leafWidget{} },
	})
	owner.FlushBuild()
	if findLeaf(root) == nil {
		t.Error("expected tree to recover on the next build")
	}
}

func TestDebugMode_Default(t *testing.T) {
	if !DebugMode {
		t.Error("expected DebugMode to default to true")
	}
}

func TestSetDebugMode(t *testing.T) {
	original := DebugMode
	defer SetDebugMode(original)

	SetDebugMode(false)
	if DebugMode {
		t.Error("expected DebugMode to be false")
	}
	SetDebugMode(true)
	if !DebugMode {
		t.Error("expected DebugMode to be true")
	}
}

func TestFindAncestor_WalksUp(t *testing.T) {
	owner := NewBuildOwner()
	var captured Element
	root := MountRoot(rowWidget{key: "outer", children: []Widget{
		hostWidget{buildFn: func(ctx BuildContext) Widget {
			captured = ctx.FindAncestor(func(e Element) bool {
				_, ok := e.Widget().(rowWidget)
				return ok
			})
			return nil
		}},
	}}, owner)

	if captured == nil {
		t.Fatal("expected an ancestor match")
	}
	if captured != root {
		t.Error("expected the row root to be found")
	}
}
