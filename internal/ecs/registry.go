package ecs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/younwookim/lionheart/internal/domain/entity"
)

// ErrDuplicateFeature is returned when a tag is registered twice.
var ErrDuplicateFeature = errors.New("duplicate feature")

// UnknownFeatureError reports a feature tag no factory is registered for.
type UnknownFeatureError struct {
	Kind string
}

func (e *UnknownFeatureError) Error() string {
	return fmt.Sprintf("unknown feature %q", e.Kind)
}

// Placement is a request to create a feature at a world position. Patrol
// overrides the default patrol of the kind when set.
type Placement struct {
	Kind   string
	X, Y   float64
	Patrol *entity.Patrol
}

// Factory builds the components of a placed feature.
type Factory func(p Placement) (Actor, error)

// Registry maps a feature tag to its factory.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register binds a tag to a factory.
func (r *Registry) Register(kind string, f Factory) error {
	if _, ok := r.factories[kind]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateFeature, kind)
	}
	r.factories[kind] = f
	return nil
}

// Has reports whether a tag is registered.
func (r *Registry) Has(kind string) bool {
	_, ok := r.factories[kind]
	return ok
}

// Create runs the factory of a tag.
func (r *Registry) Create(p Placement) (Actor, error) {
	f, ok := r.factories[p.Kind]
	if !ok {
		return Actor{}, &UnknownFeatureError{Kind: p.Kind}
	}
	return f(p)
}

// Kinds returns the registered tags, sorted.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
