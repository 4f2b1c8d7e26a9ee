package ir

import "testing"

func TestVisibleFrom(t *testing.T) {
	mod := NewModule("m")

	cls := NewClassDecl("C", Public)
	mod.AddDecl(cls)

	privMember := NewPropDecl("secret", Private)
	cls.AddMember(privMember)

	pubMember := NewPropDecl("open", Public)
	cls.AddMember(pubMember)

	privTop := NewFuncDecl("helper", Private)
	mod.AddDecl(privTop)

	other := NewClassDecl("D", Public)
	mod.AddDecl(other)

	tests := []struct {
		name   string
		target Decl
		from   Scope
		want   bool
	}{
		{"private member from its class", privMember, cls, true},
		{"private member from module scope", privMember, mod, false},
		{"private member from sibling class", privMember, other, false},
		{"public member from anywhere", pubMember, other, true},
		{"private top-level from module scope", privTop, mod, true},
		{"private top-level from nested class", privTop, cls, true},
		{"unbound declaration", NewPropDecl("fresh", Private), mod, true},
	}

	for _, tt := range tests {
		if got := VisibleFrom(tt.target, tt.from); got != tt.want {
			t.Errorf("%s: VisibleFrom() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestVisibleFromNestedClass(t *testing.T) {
	mod := NewModule("m")

	outer := NewClassDecl("Outer", Public)
	mod.AddDecl(outer)

	inner := NewClassDecl("Inner", Public)
	outer.AddMember(inner)

	priv := NewPropDecl("secret", Private)
	outer.AddMember(priv)

	// The nested class sits inside the declaring scope's subtree.
	if !VisibleFrom(priv, inner) {
		t.Errorf("private member not visible from nested class")
	}
}

func TestCtorVisibleFrom(t *testing.T) {
	mod := NewModule("m")

	cls := NewClassDecl("C", Public)
	cls.CtorVis = Private
	mod.AddDecl(cls)

	other := NewClassDecl("D", Public)
	mod.AddDecl(other)

	tests := []struct {
		name string
		from Scope
		want bool
	}{
		{"from the class itself", cls, true},
		{"from the declaring scope", mod, true},
		{"from a sibling class", other, false},
	}

	for _, tt := range tests {
		if got := CtorVisibleFrom(cls, tt.from); got != tt.want {
			t.Errorf("%s: CtorVisibleFrom() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestAccessKindTags(t *testing.T) {
	tests := []struct {
		kind AccessKind
		want string
	}{
		{AccessGet, "get"},
		{AccessSet, "set"},
		{AccessCall, "call"},
		{AccessInit, "init"},
		{AccessOuter, "outer"},
	}

	for _, tt := range tests {
		if got := tt.kind.Tag(); got != tt.want {
			t.Errorf("Tag() = %q, want %q", got, tt.want)
		}
	}
}
