package ggline

import (
	"log/slog"
	"testing"
)

type probe struct {
	tag string
}

func (p *probe) Tag() string { return p.tag }

type namedValue int

func TestTypeName(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"pointer to struct", &Line{}, "Line"},
		{"embedding struct", &DrawableLine{}, "DrawableLine"},
		{"value struct", Line{}, "Line"},
		{"double pointer", func() any { p := &probe{}; return &p }(), "probe"},
		{"named basic", namedValue(1), "namedValue"},
		{"unnamed", []int{1}, "[]int"},
		{"nil", nil, "nil"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeName(tt.v); got != tt.want {
				t.Errorf("TypeName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOnAllocate_WithoutID(t *testing.T) {
	logs := captureLogs(t)

	p := &probe{tag: "P"}
	OnAllocate(p)
	OnDeallocate(p)

	want := []string{
		"Instance P of type probe allocated.",
		"Instance P of type probe deallocated.",
	}
	if got := logs.messages(slog.LevelInfo); !equalStrings(got, want) {
		t.Errorf("messages = %q, want %q", got, want)
	}
	if _, ok := logs.last().Attrs["id"]; ok {
		t.Error("record for a type without ID carries an id attr")
	}
}

func TestOnAllocate_LevelInfo(t *testing.T) {
	logs := captureLogs(t)

	OnAllocate(&probe{tag: "P"})
	if lvl := logs.last().Level; lvl != slog.LevelInfo {
		t.Errorf("allocation record level = %v, want INFO", lvl)
	}
}
