package sim

// A Named object is an object that has a name.
type Named interface {
	Name() string
}

// A Component is an element that is being simulated. It handles its own
// events and carries a name that monitoring and logging refer to it by.
type Component interface {
	Named
	Handler
}

// ComponentBase provides some functions that other component can use.
type ComponentBase struct {
	name string
}

// NewComponentBase creates a new ComponentBase
func NewComponentBase(name string) *ComponentBase {
	c := new(ComponentBase)
	c.name = name
	return c
}

// Name returns the name of the component
func (c *ComponentBase) Name() string {
	return c.name
}
