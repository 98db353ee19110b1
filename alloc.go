package ggline

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/google/uuid"
)

// Allocatable is implemented by entities that carry an immutable tag and
// report their own construction and destruction.
//
// Conforming types must call OnAllocate as the last step of every
// constructor and OnDeallocate as the first step of their Close method.
// Nothing enforces this: a constructor that forgets the call simply
// produces no allocation record.
type Allocatable interface {
	Tag() string
}

// identifier is implemented by allocatables that also carry an instance id.
type identifier interface {
	ID() uuid.UUID
}

// OnAllocate emits "Instance <tag> of type <type> allocated." to the
// package logger.
func OnAllocate(a Allocatable) {
	logLifecycle(a, "allocated")
}

// OnDeallocate emits "Instance <tag> of type <type> deallocated." to the
// package logger.
func OnDeallocate(a Allocatable) {
	logLifecycle(a, "deallocated")
}

func logLifecycle(a Allocatable, event string) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelInfo) {
		return
	}
	msg := fmt.Sprintf("Instance %s of type %s %s.", a.Tag(), TypeName(a), event)
	if id, ok := a.(identifier); ok {
		l.Info(msg, "id", id.ID().String())
		return
	}
	l.Info(msg)
}

// TypeName returns the name of the concrete type behind v, without the
// package path or pointer marker. Unnamed types fall back to their
// reflect string form.
func TypeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "nil"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
