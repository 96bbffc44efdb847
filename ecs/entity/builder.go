package entity

import (
	"fmt"

	"github.com/milk9111/madzslay/ecs"
	"github.com/milk9111/madzslay/ecs/component"
)

// builder attaches components to a fresh entity and keeps the first error.
// finish destroys the entity when any attach failed, so a failed constructor
// never leaves a partial entity in the world.
type builder struct {
	w      *ecs.World
	entity ecs.Entity
	name   string
	err    error
}

func newBuilder(w *ecs.World, name string) *builder {
	return &builder{w: w, entity: ecs.CreateEntity(w), name: name}
}

func attach[T any](b *builder, what string, kind component.ComponentKind[T], value *T) {
	if b.err != nil {
		return
	}
	if err := ecs.Add(b.w, b.entity, kind, value); err != nil {
		b.err = fmt.Errorf("%s: add %s: %w", b.name, what, err)
	}
}

func (b *builder) finish() (ecs.Entity, error) {
	if b.err != nil {
		ecs.DestroyEntity(b.w, b.entity)
		return 0, b.err
	}
	return b.entity, nil
}
