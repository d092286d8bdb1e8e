package canvas

// Registry tracks the live canvases and scalers, in registration order.
type Registry struct {
	canvases []*Canvas
	scalers  []*Scaler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a canvas and, when non-nil, its scaler. Registering the same
// canvas twice is a no-op.
func (r *Registry) Register(c *Canvas, s *Scaler) {
	for _, existing := range r.canvases {
		if existing == c {
			return
		}
	}
	r.canvases = append(r.canvases, c)
	if s != nil {
		r.scalers = append(r.scalers, s)
	}
}

// Unregister removes a canvas and every scaler writing to it.
func (r *Registry) Unregister(c *Canvas) {
	canvases := r.canvases[:0]
	for _, existing := range r.canvases {
		if existing != c {
			canvases = append(canvases, existing)
		}
	}
	r.canvases = canvases

	scalers := r.scalers[:0]
	for _, s := range r.scalers {
		if s.Surface() != Surface(c) {
			scalers = append(scalers, s)
		}
	}
	r.scalers = scalers
}

// Canvases returns the registered canvases.
func (r *Registry) Canvases() []*Canvas {
	out := make([]*Canvas, len(r.canvases))
	copy(out, r.canvases)
	return out
}

// Scalers returns the registered scalers.
func (r *Registry) Scalers() []*Scaler {
	out := make([]*Scaler, len(r.scalers))
	copy(out, r.scalers)
	return out
}

// Find returns the canvas with the given name, or nil.
func (r *Registry) Find(name string) *Canvas {
	for _, c := range r.canvases {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// HandleAll runs every scaler for the screen.
func (r *Registry) HandleAll(screen Screen) {
	for _, s := range r.scalers {
		s.Handle(screen)
	}
}
