// Command showcase mounts a small stagehand tree headlessly, prints the
// styles each widget resolves from the cue sheet, and fires a callback
// through the conductor's controller.
package main

import (
	"fmt"
	"log"

	"github.com/go-stagehand/stagehand/pkg/conduct"
	"github.com/go-stagehand/stagehand/pkg/core"
	"github.com/go-stagehand/stagehand/pkg/style"
	"github.com/go-stagehand/stagehand/pkg/widgets"
)

func main() {
	sheet, err := style.LoadSheet("cues.yaml")
	if err != nil {
		log.Fatalf("load cue sheet: %v", err)
	}

	ctrl := conduct.NewController()
	owner := core.NewBuildOwner()
	root := core.MountRoot(ToastApp{Sheet: sheet, Controller: ctrl}, owner)

	fmt.Println("-- initial frame --")
	dumpStyles(root)

	// The toast's completion callback hides it and dirties the tree.
	ctrl.FireCallback("toastIn", "slide finished")
	owner.FlushBuild()

	fmt.Println("-- after toast finished --")
	dumpStyles(root)

	// Unknown keys are silently dropped.
	ctrl.FireCallback("confetti")

	root.Unmount()
	if ctrl.Attached() {
		log.Fatal("controller still attached after unmount")
	}
	fmt.Println("-- unmounted, controller detached --")
}

func dumpStyles(root core.Element) {
	var walk func(e core.Element) bool
	walk = func(e core.Element) bool {
		switch w := e.Widget().(type) {
		case widgets.Box:
			printResolved(fmt.Sprintf("Box(%v)", w.WidgetKey), w.Resolved())
		case widgets.Label:
			printResolved(fmt.Sprintf("Label(%q)", w.Content), w.Resolved())
		}
		e.VisitChildren(walk)
		return true
	}
	walk(root)
}

func printResolved(name string, s style.Style) {
	line := name
	if s.Opacity != nil {
		line += fmt.Sprintf(" opacity=%.1f", *s.Opacity)
	}
	if s.TranslateY != nil {
		line += fmt.Sprintf(" translateY=%.0f", *s.TranslateY)
	}
	if s.BackgroundColor != nil {
		line += " background=" + s.BackgroundColor.Hex()
	}
	if s.FontSize != nil {
		line += fmt.Sprintf(" fontSize=%.0f", *s.FontSize)
	}
	if s.Color != nil {
		line += " color=" + s.Color.Hex()
	}
	fmt.Println("  " + line)
}
