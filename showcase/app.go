package main

import (
	"log"

	"github.com/go-stagehand/stagehand/pkg/conduct"
	"github.com/go-stagehand/stagehand/pkg/core"
	"github.com/go-stagehand/stagehand/pkg/style"
	"github.com/go-stagehand/stagehand/pkg/widgets"
)

// ToastApp is the demo root: a card with a title and a toast banner whose
// styles are driven by the cue sheet.
type ToastApp struct {
	Sheet      style.Sheet
	Controller *conduct.Controller
}

func (a ToastApp) CreateElement() core.Element {
	return core.NewStatefulElement(a, nil)
}

func (a ToastApp) Key() any {
	return nil
}

func (a ToastApp) CreateState() core.State {
	return &toastAppState{}
}

type toastAppState struct {
	core.StateBase
	toastVisible *core.Managed[bool]
}

func (s *toastAppState) InitState() {
	s.toastVisible = core.NewManaged(s, true)
}

func (s *toastAppState) Build(ctx core.BuildContext) core.Widget {
	app := s.Element().Widget().(ToastApp)

	toastKey := "toastIn"
	if !s.toastVisible.Value() {
		toastKey = "toastOut"
	}

	return conduct.Conductor{
		Styles:     app.Sheet,
		Controller: app.Controller,
		ChildWidget: widgets.GroupOf(
			conduct.Performer{
				AnimationKey: "cardAppear",
				ChildWidget: widgets.Box{
					WidgetKey: "card",
					ChildWidget: conduct.Performer{
						AnimationKey: "titlePop",
						ChildWidget:  widgets.Label{Content: "Order confirmed", WidgetKey: "title"},
					},
				},
			},
			widgets.VSpace(12),
			conduct.Performer{
				AnimationKey: toastKey,
				OnCallback: func(args ...any) {
					log.Printf("toast finished: %v", args)
					s.toastVisible.Set(false)
				},
				ChildWidget: widgets.Box{
					WidgetKey:   "toast",
					ChildWidget: widgets.Label{Content: "Saved to your orders"},
				},
			},
		),
	}
}
