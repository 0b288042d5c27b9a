package conduct

// Controller is the imperative handle to a mounted Conductor. It is created
// by application code with NewController, passed to the Conductor widget, and
// attached while the conductor is mounted. FireCallback is the only
// operation; holding a Controller grants exactly the ability to trigger
// callbacks, nothing else.
//
// Like all framework objects, a Controller must only be used from the UI
// thread; the framework serializes build and callback execution.
type Controller struct {
	scope *conductorState
}

// NewController creates a detached controller. It becomes live when a
// mounted Conductor references it.
func NewController() *Controller {
	return &Controller{}
}

// FireCallback invokes the handler registered under key with exactly the
// given arguments. It is a silent no-op if the controller is detached, the
// key is unknown, or no handler is currently registered for it.
func (c *Controller) FireCallback(key string, args ...any) {
	if c.scope == nil {
		reportDiagnostic(Diagnostic{Kind: DiagDroppedCallback, Key: key})
		return
	}
	c.scope.fireCallback(key, args...)
}

// Attached reports whether a mounted Conductor currently backs this controller.
func (c *Controller) Attached() bool {
	return c.scope != nil
}

// Dispose detaches the controller. Conductors detach their controller on
// unmount; Dispose exists so controllers work with core.UseController.
func (c *Controller) Dispose() {
	c.scope = nil
}

func (c *Controller) attach(s *conductorState) {
	c.scope = s
}

func (c *Controller) detach(s *conductorState) {
	if c.scope == s {
		c.scope = nil
	}
}
