package menu

import (
	"fmt"

	"countrytable/internal/query"
	"countrytable/internal/render"
)

// Controller binds menu actions to the engine and a render target. Each
// Run executes the action's query, re-renders the target's rows and
// replaces its caption; nothing else on the target is touched.
type Controller struct {
	engine   *query.Engine
	target   render.Target
	renderer *render.TableRenderer
}

func NewController(engine *query.Engine, target render.Target) *Controller {
	return &Controller{
		engine:   engine,
		target:   target,
		renderer: render.NewTableRenderer(target),
	}
}

// Run executes the action with the given id and returns the number of rows
// rendered.
func (c *Controller) Run(id string) (int, error) {
	act, ok := Find(id)
	if !ok {
		return 0, fmt.Errorf("unknown action %q", id)
	}
	return c.RunAction(act)
}

// RunAction executes an action directly.
func (c *Controller) RunAction(act Action) (int, error) {
	list, err := act.Query(c.engine)
	if err != nil {
		return 0, err
	}
	c.renderer.Render(list)
	c.target.SetCaption(act.Caption)
	return len(list), nil
}
