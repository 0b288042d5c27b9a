// Package conduct distributes named style bundles and callbacks through a
// widget subtree.
//
// A [Conductor] wraps a subtree and publishes a [style.Sheet]: a mapping from
// animation-key to style bundle. Any [Performer] below it, at any depth,
// declares the key it wants and has the matching bundle merged onto its
// child's own styles. A Performer may also register a callback under its key;
// application code holding the conductor's [Controller] can invoke that
// callback by key with arbitrary arguments.
//
//	ctrl := conduct.NewController()
//	root := conduct.Conductor{
//	    Controller: ctrl,
//	    Styles: style.Sheet{
//	        "fadeIn": {{Opacity: style.Ptr(1.0)}},
//	    },
//	    ChildWidget: conduct.Performer{
//	        AnimationKey: "fadeIn",
//	        OnCallback:   func(args ...any) { ... },
//	        ChildWidget:  widgets.Box{...},
//	    },
//	}
//	...
//	ctrl.FireCallback("fadeIn", "done")
//
// Missing keys, a missing enclosing Conductor, and callbacks fired for keys
// nobody registered are all tolerated; declare-and-forget is the intended
// usage. In debug mode (see [core.SetDebugMode]) these events are logged
// through the errors handler, and SetDiagnostics installs an optional hook
// that observes them instead. API behavior never changes either way.
package conduct
