package sheet

import "stylec/style"

// Computed is the flat view of one class: the last value per kind, with
// reset kinds removed.
type Computed struct {
	Values     map[style.Kind]style.Value
	Resets     Mark
	Show       style.Show
	Animation  style.Animation
	Transition style.Transition
}

func (c *Computed) Get(k style.Kind) (style.Value, bool) {
	v, ok := c.Values[k]
	return v, ok
}

// Computed resolves class id.
func (s *ClassSheet) Computed(id uint64) (*Computed, bool, error) {
	attrs, ok, err := s.Class(id)
	if !ok || err != nil {
		return nil, ok, err
	}
	return Compute(attrs), true, nil
}

// Compute folds attrs in order, so later declarations win.
func Compute(attrs []style.Attribute) *Computed {
	c := &Computed{Values: make(map[style.Kind]style.Value), Show: style.DefaultShow}
	for _, a := range attrs {
		if a.Reset {
			delete(c.Values, a.Kind)
			c.Resets.Set(a.Kind)
			continue
		}
		c.Values[a.Kind] = a.Value
	}
	for k, v := range c.Values {
		switch v := v.(type) {
		case style.Display:
			c.Show.SetDisplay(v)
		case style.Enable:
			c.Show.SetEnable(v)
		case style.Bool:
			if k == style.KindVisibility {
				c.Show.SetVisibility(bool(v))
			}
		case style.AnimationName:
			c.Animation.Name = v
		case style.AnimationDirections:
			c.Animation.Direction = v
		case style.FillModes:
			c.Animation.FillMode = v
		case style.PlayStates:
			c.Animation.PlayState = v
		case style.IterationCounts:
			c.Animation.IterationCount = v
		case style.TransitionProperties:
			c.Transition.Property = v
		case style.Times:
			switch k {
			case style.KindAnimationDuration:
				c.Animation.Duration = v
			case style.KindAnimationDelay:
				c.Animation.Delay = v
			case style.KindTransitionDuration:
				c.Transition.Duration = v
			case style.KindTransitionDelay:
				c.Transition.Delay = v
			}
		case style.TimingFunctions:
			if k == style.KindAnimationTimingFunction {
				c.Animation.TimingFunction = v
			} else {
				c.Transition.TimingFunction = v
			}
		}
	}
	return c
}
