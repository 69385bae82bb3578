package validator

// Registry is the ordered catalogue of validators consulted by the Engine.
// It is immutable after construction and safe for concurrent access.
type Registry struct {
	validators []Validator
}

// NewRegistry creates a Registry holding vs in dispatch order.
func NewRegistry(vs ...Validator) *Registry {
	return &Registry{validators: append([]Validator(nil), vs...)}
}

// Len returns the number of registered validators.
func (r *Registry) Len() int {
	return len(r.validators)
}

// All returns the registered validators in dispatch order.
func (r *Registry) All() []Validator {
	return append([]Validator(nil), r.validators...)
}
