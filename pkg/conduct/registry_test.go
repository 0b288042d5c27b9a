package conduct

import (
	"reflect"
	"testing"
)

func newRegistryForTest() *conductorState {
	return &conductorState{callbacks: make(map[string]*callbackRegistration)}
}

func TestRegisterCallback_LatestRegistrationWins(t *testing.T) {
	s := newRegistryForTest()

	var order []string
	s.RegisterCallback("pulse", func(args ...any) { order = append(order, "first") })
	s.RegisterCallback("pulse", func(args ...any) { order = append(order, "second") })

	s.fireCallback("pulse")
	if !reflect.DeepEqual(order, []string{"second"}) {
		t.Errorf("expected only the latest handler, got %v", order)
	}
}

func TestRegisterCallback_StaleUnregisterIsNoOp(t *testing.T) {
	s := newRegistryForTest()

	var order []string
	unregisterFirst := s.RegisterCallback("pulse", func(args ...any) { order = append(order, "first") })
	s.RegisterCallback("pulse", func(args ...any) { order = append(order, "second") })

	// The first binding was already replaced. Unregistering it must leave
	// the newer binding intact.
	unregisterFirst()

	s.fireCallback("pulse")
	if !reflect.DeepEqual(order, []string{"second"}) {
		t.Errorf("expected newer binding to survive stale unregister, got %v", order)
	}
}

func TestRegisterCallback_CurrentUnregisterRemovesBinding(t *testing.T) {
	s := newRegistryForTest()

	invoked := false
	unregister := s.RegisterCallback("pulse", func(args ...any) { invoked = true })
	unregister()

	s.fireCallback("pulse")
	if invoked {
		t.Error("expected no handler after unregister")
	}
}

func TestRegisterCallback_NilHandlerOrDisposedRegistry(t *testing.T) {
	s := newRegistryForTest()
	unregister := s.RegisterCallback("pulse", nil)
	unregister()
	if len(s.callbacks) != 0 {
		t.Errorf("expected empty registry, got %d entries", len(s.callbacks))
	}

	disposed := &conductorState{}
	unregister = disposed.RegisterCallback("pulse", func(args ...any) {})
	unregister()
}

func TestFireCallback_ForwardsArguments(t *testing.T) {
	s := newRegistryForTest()

	var got []any
	s.RegisterCallback("pulse", func(args ...any) { got = append([]any{}, args...) })

	s.fireCallback("pulse", "a", 1, false)
	want := []any{"a", 1, false}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected args %v, got %v", want, got)
	}
}

func TestFireCallback_DistinctKeysAreIndependent(t *testing.T) {
	s := newRegistryForTest()

	var order []string
	s.RegisterCallback("enter", func(args ...any) { order = append(order, "enter") })
	s.RegisterCallback("exit", func(args ...any) { order = append(order, "exit") })

	s.fireCallback("exit")
	s.fireCallback("enter")
	if !reflect.DeepEqual(order, []string{"exit", "enter"}) {
		t.Errorf("expected independent bindings per key, got %v", order)
	}
}
