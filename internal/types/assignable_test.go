package types

import "testing"

func TestAssignableReflexivity(t *testing.T) {
	cases := []*Type{
		Any, Unknown, Never, Void, Null, Undefined,
		Number, String, Boolean, Symbol, Bigint, Object,
		NewLiteral(LitString, "up"),
		NewLiteral(LitNumber, "5"),
		NewLiteral(LitBoolean, "true"),
		NewArray(Number),
		NewTuple([]*Type{Number, String}),
		NewFunction([]Param{{Name: "x", Type: Number}}, Boolean),
		NewInterface("Point", []string{"x", "y"}, map[string]*Type{"x": Number, "y": Number}),
		NewEnum("Color"),
		NewUnion([]*Type{Number, String}),
		NewClass("Animal", []string{"name"}, map[string]*Type{"name": String}, []string{"count"}, map[string]*Type{"count": Number}, nil),
	}
	for _, typ := range cases {
		if !Assignable(typ, typ) {
			t.Fatalf("expected %s to be assignable to itself", Stringify(typ))
		}
	}
}

func TestLiteralAssignableToSameLiteral(t *testing.T) {
	a := NewLiteral(LitString, "up")
	b := NewLiteral(LitString, "up")
	if !Assignable(a, b) {
		t.Fatalf("expected matching string literals to be assignable")
	}
}

func TestLiteralNotAssignableToDifferentLiteral(t *testing.T) {
	a := NewLiteral(LitString, "up")
	b := NewLiteral(LitString, "down")
	if Assignable(a, b) {
		t.Fatalf("expected different string literals not to be assignable")
	}
}

func TestLiteralAssignableToUnionOfLiterals(t *testing.T) {
	union := NewUnion([]*Type{NewLiteral(LitString, "up"), NewLiteral(LitString, "down")})
	if !Assignable(NewLiteral(LitString, "up"), union) {
		t.Fatalf("expected \"up\" to be assignable to \"up\" | \"down\"")
	}
}

func TestLiteralNotAssignableToUnmatchedUnionOfLiterals(t *testing.T) {
	union := NewUnion([]*Type{NewLiteral(LitString, "up"), NewLiteral(LitString, "down")})
	if Assignable(NewLiteral(LitString, "left"), union) {
		t.Fatalf("expected \"left\" not to be assignable to \"up\" | \"down\"")
	}
}

func TestStringWidensIntoUnionOfStringLiterals(t *testing.T) {
	union := NewUnion([]*Type{NewLiteral(LitString, "up"), NewLiteral(LitString, "down")})
	if !Assignable(String, union) {
		t.Fatalf("expected string to be assignable to a union of string literals (spec relaxation)")
	}
}

func TestNumberLiteralNotAssignableToStringLiteral(t *testing.T) {
	if Assignable(NewLiteral(LitNumber, "5"), NewLiteral(LitString, "5")) {
		t.Fatalf("expected a number literal not to be assignable to a same-spelled string literal")
	}
}

func TestClassInstanceAssignableToMatchingInterface(t *testing.T) {
	class := NewClass("Dog", []string{"name"}, map[string]*Type{"name": String}, nil, map[string]*Type{}, nil)
	instance := NewInterface(class.Name, class.Order, class.Members)
	iface := NewInterface("Named", []string{"name"}, map[string]*Type{"name": String})
	if !Assignable(instance, iface) {
		t.Fatalf("expected a class instance to satisfy a structurally matching interface")
	}
}

func TestClassInstanceNotAssignableToMismatchedInterface(t *testing.T) {
	class := NewClass("Dog", []string{"name"}, map[string]*Type{"name": String}, nil, map[string]*Type{}, nil)
	instance := NewInterface(class.Name, class.Order, class.Members)
	iface := NewInterface("Aged", []string{"age"}, map[string]*Type{"age": Number})
	if Assignable(instance, iface) {
		t.Fatalf("expected a class instance missing %q not to satisfy the interface", "age")
	}
}
