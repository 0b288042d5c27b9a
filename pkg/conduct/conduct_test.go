package conduct_test

import (
	"reflect"
	"testing"

	"github.com/go-stagehand/stagehand/pkg/conduct"
	"github.com/go-stagehand/stagehand/pkg/core"
	"github.com/go-stagehand/stagehand/pkg/style"
	"github.com/go-stagehand/stagehand/pkg/testkit"
	"github.com/go-stagehand/stagehand/pkg/widgets"
)

func fadeSheet() style.Sheet {
	return style.Sheet{
		"fadeIn": {
			{Opacity: style.Ptr(1.0)},
		},
		"slideUp": {
			{TranslateY: style.Ptr(-24.0)},
			{Opacity: style.Ptr(0.8)},
		},
	}
}

func boxResolved(t *testing.T, tester *testkit.ComponentTester, key any) style.Style {
	t.Helper()
	found := tester.Find(testkit.ByKey(key))
	if !found.Exists() {
		t.Fatalf("no widget with key %v", key)
	}
	box, ok := found.Widget().(widgets.Box)
	if !ok {
		t.Fatalf("expected widgets.Box, got %T", found.Widget())
	}
	return box.Resolved()
}

func TestPerformer_ReceivesStyleForKey(t *testing.T) {
	tester := testkit.NewComponentTesterWithT(t)

	base := style.Style{
		Opacity:         style.Ptr(0.0),
		BackgroundColor: style.Ptr(style.ColorWhite),
	}
	tester.PumpWidget(conduct.Conductor{
		Styles: fadeSheet(),
		ChildWidget: conduct.Performer{
			AnimationKey: "fadeIn",
			ChildWidget:  widgets.Box{Style: base, WidgetKey: "target"},
		},
	})

	resolved := boxResolved(t, tester, "target")
	if resolved.Opacity == nil || *resolved.Opacity != 1.0 {
		t.Errorf("expected injected opacity 1.0 to win, got %v", resolved.Opacity)
	}
	if resolved.BackgroundColor == nil || *resolved.BackgroundColor != style.ColorWhite {
		t.Errorf("expected base background to survive merge, got %v", resolved.BackgroundColor)
	}
}

func TestPerformer_SequenceBundle_LaterEntriesWin(t *testing.T) {
	tester := testkit.NewComponentTesterWithT(t)

	tester.PumpWidget(conduct.Conductor{
		Styles: style.Sheet{
			"pulse": {
				{Opacity: style.Ptr(0.2), Scale: style.Ptr(1.0)},
				{Opacity: style.Ptr(0.9)},
			},
		},
		ChildWidget: conduct.Performer{
			AnimationKey: "pulse",
			ChildWidget:  widgets.Box{WidgetKey: "target"},
		},
	})

	resolved := boxResolved(t, tester, "target")
	if resolved.Opacity == nil || *resolved.Opacity != 0.9 {
		t.Errorf("expected later record's opacity 0.9, got %v", resolved.Opacity)
	}
	if resolved.Scale == nil || *resolved.Scale != 1.0 {
		t.Errorf("expected earlier record's scale to survive, got %v", resolved.Scale)
	}
}

func TestPerformer_AbsentKey_RendersDefaultStyle(t *testing.T) {
	tester := testkit.NewComponentTesterWithT(t)

	base := style.Style{Opacity: style.Ptr(0.5)}
	tester.PumpWidget(conduct.Conductor{
		Styles: fadeSheet(),
		ChildWidget: conduct.Performer{
			AnimationKey: "noSuchKey",
			ChildWidget:  widgets.Box{Style: base, WidgetKey: "target"},
		},
	})

	resolved := boxResolved(t, tester, "target")
	if !reflect.DeepEqual(resolved, base) {
		t.Errorf("expected untouched base style, got %+v", resolved)
	}
}

func TestPerformer_NoConductor_RendersDefaultStyle(t *testing.T) {
	tester := testkit.NewComponentTesterWithT(t)

	base := style.Style{Width: style.Ptr(40.0)}
	tester.PumpWidget(conduct.Performer{
		AnimationKey: "fadeIn",
		ChildWidget:  widgets.Box{Style: base, WidgetKey: "target"},
	})

	resolved := boxResolved(t, tester, "target")
	if !reflect.DeepEqual(resolved, base) {
		t.Errorf("expected untouched base style, got %+v", resolved)
	}
}

func TestPerformer_DuplicateKeys_BothReceiveSameStyle(t *testing.T) {
	tester := testkit.NewComponentTesterWithT(t)

	tester.PumpWidget(conduct.Conductor{
		Styles: fadeSheet(),
		ChildWidget: widgets.GroupOf(
			conduct.Performer{
				AnimationKey: "fadeIn",
				ChildWidget:  widgets.Box{WidgetKey: "first"},
			},
			conduct.Performer{
				AnimationKey: "fadeIn",
				ChildWidget:  widgets.Box{WidgetKey: "second"},
			},
		),
	})

	first := boxResolved(t, tester, "first")
	second := boxResolved(t, tester, "second")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical styles, got %+v and %+v", first, second)
	}
	if first.Opacity == nil || *first.Opacity != 1.0 {
		t.Errorf("expected opacity 1.0, got %v", first.Opacity)
	}
}

func TestController_FireCallback_ExactArguments(t *testing.T) {
	tester := testkit.NewComponentTesterWithT(t)
	ctrl := conduct.NewController()

	var got []any
	tester.PumpWidget(conduct.Conductor{
		Styles:     fadeSheet(),
		Controller: ctrl,
		ChildWidget: conduct.Performer{
			AnimationKey: "fadeIn",
			OnCallback:   func(args ...any) { got = append([]any{}, args...) },
			ChildWidget:  widgets.Box{},
		},
	})

	ctrl.FireCallback("fadeIn", "done", 3, true)

	want := []any{"done", 3, true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected args %v, got %v", want, got)
	}
}

func TestController_FireCallback_UnknownKeyIsNoOp(t *testing.T) {
	tester := testkit.NewComponentTesterWithT(t)
	ctrl := conduct.NewController()

	invoked := false
	tester.PumpWidget(conduct.Conductor{
		Styles:     fadeSheet(),
		Controller: ctrl,
		ChildWidget: conduct.Performer{
			AnimationKey: "fadeIn",
			OnCallback:   func(args ...any) { invoked = true },
			ChildWidget:  widgets.Box{},
		},
	})

	ctrl.FireCallback("noSuchKey")

	if invoked {
		t.Error("expected no handler to run for an unknown key")
	}
}

func TestController_Detached_FireCallbackIsNoOp(t *testing.T) {
	ctrl := conduct.NewController()
	if ctrl.Attached() {
		t.Fatal("fresh controller should be detached")
	}
	// Must not panic.
	ctrl.FireCallback("anything", 1, 2)
}

func TestController_DetachesOnUnmount(t *testing.T) {
	tester := testkit.NewComponentTesterWithT(t)
	ctrl := conduct.NewController()

	tester.PumpWidget(conduct.Conductor{
		Styles:      fadeSheet(),
		Controller:  ctrl,
		ChildWidget: widgets.Box{},
	})
	if !ctrl.Attached() {
		t.Fatal("expected controller attached while conductor is mounted")
	}

	tester.PumpWidget(widgets.Box{})
	if ctrl.Attached() {
		t.Error("expected controller detached after conductor unmounted")
	}
}

func TestPerformer_UnmountDeregistersCallback(t *testing.T) {
	tester := testkit.NewComponentTesterWithT(t)
	ctrl := conduct.NewController()

	invocations := 0
	var hide func()
	host := core.Stateful(
		func() bool { return true },
		func(show bool, ctx core.BuildContext, set func(func(bool) bool)) core.Widget {
			hide = func() { set(func(bool) bool { return false }) }
			if !show {
				return widgets.Box{}
			}
			return conduct.Performer{
				AnimationKey: "fadeIn",
				OnCallback:   func(args ...any) { invocations++ },
				ChildWidget:  widgets.Box{},
			}
		},
	)

	tester.PumpWidget(conduct.Conductor{
		Styles:      fadeSheet(),
		Controller:  ctrl,
		ChildWidget: host,
	})

	ctrl.FireCallback("fadeIn")
	if invocations != 1 {
		t.Fatalf("expected 1 invocation while mounted, got %d", invocations)
	}

	hide()
	tester.Pump()

	ctrl.FireCallback("fadeIn")
	if invocations != 1 {
		t.Errorf("expected no invocation after unmount, got %d", invocations)
	}
}

func TestPerformer_KeyChangeReRegisters(t *testing.T) {
	tester := testkit.NewComponentTesterWithT(t)
	ctrl := conduct.NewController()

	var got string
	var rebind func()
	host := core.Stateful(
		func() string { return "fadeIn" },
		func(key string, ctx core.BuildContext, set func(func(string) string)) core.Widget {
			rebind = func() { set(func(string) string { return "slideUp" }) }
			return conduct.Performer{
				AnimationKey: key,
				OnCallback:   func(args ...any) { got = key },
				ChildWidget:  widgets.Box{WidgetKey: "target"},
			}
		},
	)

	tester.PumpWidget(conduct.Conductor{
		Styles:      fadeSheet(),
		Controller:  ctrl,
		ChildWidget: host,
	})

	rebind()
	tester.Pump()

	// Old key no longer bound.
	ctrl.FireCallback("fadeIn")
	if got != "" {
		t.Fatalf("expected old key to be unbound, handler saw %q", got)
	}

	ctrl.FireCallback("slideUp")
	if got != "slideUp" {
		t.Errorf("expected handler bound to new key, got %q", got)
	}

	// Style follows the new key too.
	resolved := boxResolved(t, tester, "target")
	if resolved.TranslateY == nil || *resolved.TranslateY != -24.0 {
		t.Errorf("expected slideUp bundle applied after rebind, got %+v", resolved)
	}
}

func TestPerformer_MostRecentRegistrationWins(t *testing.T) {
	tester := testkit.NewComponentTesterWithT(t)
	ctrl := conduct.NewController()

	var order []string
	tester.PumpWidget(conduct.Conductor{
		Styles:     fadeSheet(),
		Controller: ctrl,
		ChildWidget: widgets.GroupOf(
			conduct.Performer{
				AnimationKey: "fadeIn",
				OnCallback:   func(args ...any) { order = append(order, "first") },
				ChildWidget:  widgets.Box{},
			},
			conduct.Performer{
				AnimationKey: "fadeIn",
				OnCallback:   func(args ...any) { order = append(order, "second") },
				ChildWidget:  widgets.Box{},
			},
		),
	})

	ctrl.FireCallback("fadeIn")

	if !reflect.DeepEqual(order, []string{"second"}) {
		t.Errorf("expected only the most recently mounted handler, got %v", order)
	}
}

func TestNestedConductors_NearestWins(t *testing.T) {
	tester := testkit.NewComponentTesterWithT(t)
	outerCtrl := conduct.NewController()
	innerCtrl := conduct.NewController()

	var invokedBy []string
	tester.PumpWidget(conduct.Conductor{
		Controller: outerCtrl,
		Styles: style.Sheet{
			"fadeIn": {{Opacity: style.Ptr(0.1)}},
		},
		ChildWidget: conduct.Conductor{
			Controller: innerCtrl,
			Styles: style.Sheet{
				"fadeIn": {{Opacity: style.Ptr(0.9)}},
			},
			ChildWidget: conduct.Performer{
				AnimationKey: "fadeIn",
				OnCallback:   func(args ...any) { invokedBy = append(invokedBy, args[0].(string)) },
				ChildWidget:  widgets.Box{WidgetKey: "target"},
			},
		},
	})

	resolved := boxResolved(t, tester, "target")
	if resolved.Opacity == nil || *resolved.Opacity != 0.9 {
		t.Errorf("expected inner conductor's style to win, got %v", resolved.Opacity)
	}

	// The performer registered with the nearest scope only.
	outerCtrl.FireCallback("fadeIn", "outer")
	innerCtrl.FireCallback("fadeIn", "inner")
	if !reflect.DeepEqual(invokedBy, []string{"inner"}) {
		t.Errorf("expected registration with inner conductor only, got %v", invokedBy)
	}
}

func TestConductor_SheetReplacementRestyles(t *testing.T) {
	tester := testkit.NewComponentTesterWithT(t)

	var brighten func()
	host := core.Stateful(
		func() float64 { return 0.2 },
		func(opacity float64, ctx core.BuildContext, set func(func(float64) float64)) core.Widget {
			brighten = func() { set(func(float64) float64 { return 1.0 }) }
			return conduct.Conductor{
				Styles: style.Sheet{
					"fadeIn": {{Opacity: style.Ptr(opacity)}},
				},
				ChildWidget: conduct.Performer{
					AnimationKey: "fadeIn",
					ChildWidget:  widgets.Box{WidgetKey: "target"},
				},
			}
		},
	)
	tester.PumpWidget(host)

	resolved := boxResolved(t, tester, "target")
	if resolved.Opacity == nil || *resolved.Opacity != 0.2 {
		t.Fatalf("expected initial opacity 0.2, got %v", resolved.Opacity)
	}

	brighten()
	tester.Pump()

	resolved = boxResolved(t, tester, "target")
	if resolved.Opacity == nil || *resolved.Opacity != 1.0 {
		t.Errorf("expected replaced sheet's opacity 1.0, got %v", resolved.Opacity)
	}
}

func TestPerformer_UnstyledChild_RendersUnchanged(t *testing.T) {
	tester := testkit.NewComponentTesterWithT(t)

	// Group does not implement style.Styled.
	tester.PumpWidget(conduct.Conductor{
		Styles: fadeSheet(),
		ChildWidget: conduct.Performer{
			AnimationKey: "fadeIn",
			ChildWidget:  widgets.Group{WidgetKey: "plain"},
		},
	})

	if !tester.Find(testkit.ByKey("plain")).Exists() {
		t.Error("expected unstyleable child to render unchanged")
	}
}

func TestDiagnostics_ObserveSilentNoOps(t *testing.T) {
	var events []conduct.Diagnostic
	conduct.SetDiagnostics(func(d conduct.Diagnostic) { events = append(events, d) })
	defer conduct.SetDiagnostics(nil)

	tester := testkit.NewComponentTesterWithT(t)
	ctrl := conduct.NewController()
	tester.PumpWidget(conduct.Conductor{
		Styles:     fadeSheet(),
		Controller: ctrl,
		ChildWidget: conduct.Performer{
			AnimationKey: "noSuchKey",
			ChildWidget:  widgets.Box{},
		},
	})
	ctrl.FireCallback("alsoMissing")

	var kinds []conduct.DiagnosticKind
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	if !reflect.DeepEqual(kinds, []conduct.DiagnosticKind{conduct.DiagMissingKey, conduct.DiagDroppedCallback}) {
		t.Errorf("expected missing-key then dropped-callback diagnostics, got %v", kinds)
	}
	if events[0].Key != "noSuchKey" {
		t.Errorf("expected diagnostic key %q, got %q", "noSuchKey", events[0].Key)
	}
}
