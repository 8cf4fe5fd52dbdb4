package ast

// Type expressions form their own small grammar, separate from value
// expressions: reference, array, tuple, union, intersection, function,
// object, literal, conditional, indexed-access, parenthesized, plus the
// rarely used mapped/infer/type-query/optional/rest forms.

// TypeReference is a named type, optionally with a type-argument list:
// "Array<T>", "Promise<string>", "MyAlias".
type TypeReference struct {
	base
	Name     string
	TypeArgs []TypeExpr
}

func (*TypeReference) typeExprNode() {}

// ArrayTypeExpr is "T[]".
type ArrayTypeExpr struct {
	base
	Element TypeExpr
}

func (*ArrayTypeExpr) typeExprNode() {}

// TupleTypeExpr is "[T, U, V]".
type TupleTypeExpr struct {
	base
	Elements []TypeExpr
}

func (*TupleTypeExpr) typeExprNode() {}

// UnionTypeExpr is "A | B | C". Flattened at parse time: a union whose
// operand is itself a union is merged rather than nested.
type UnionTypeExpr struct {
	base
	Types []TypeExpr
}

func (*UnionTypeExpr) typeExprNode() {}

// IntersectionTypeExpr is "A & B & C", flattened the same way as unions.
type IntersectionTypeExpr struct {
	base
	Types []TypeExpr
}

func (*IntersectionTypeExpr) typeExprNode() {}

// FunctionTypeExpr is "(a: number, b?: string) => boolean".
type FunctionTypeExpr struct {
	base
	Params     []*Param
	ReturnType TypeExpr
}

func (*FunctionTypeExpr) typeExprNode() {}

// ObjectTypeMember is one property or method signature inside an
// ObjectTypeExpr or an interface declaration.
type ObjectTypeMember struct {
	Name       string
	Type       TypeExpr
	Optional   bool
	Readonly   bool
	IsMethod   bool
	Params     []*Param
	ReturnType TypeExpr
	Line       int
}

// IndexSignature is "[key: string]: T" inside an object type.
type IndexSignature struct {
	KeyName string
	KeyType TypeExpr
	Value   TypeExpr
}

// ObjectTypeExpr is "{ name: string; age?: number; [k: string]: any }".
type ObjectTypeExpr struct {
	base
	Members         []*ObjectTypeMember
	IndexSignatures []*IndexSignature
}

func (*ObjectTypeExpr) typeExprNode() {}

// LiteralTypeExpr is a single-scalar type: "42", "\"red\"", "true".
type LiteralTypeExpr struct {
	base
	Kind  LiteralKind
	Value string
}

func (*LiteralTypeExpr) typeExprNode() {}

// LiteralKind distinguishes the scalar flavor carried by a literal type
// or a checker literal type value.
type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralNumber
	LiteralBoolean
)

// ConditionalTypeExpr is "Check extends Extends ? True : False".
type ConditionalTypeExpr struct {
	base
	Check    TypeExpr
	Extends  TypeExpr
	True     TypeExpr
	False    TypeExpr
}

func (*ConditionalTypeExpr) typeExprNode() {}

// IndexedAccessTypeExpr is "T[K]".
type IndexedAccessTypeExpr struct {
	base
	Object TypeExpr
	Index  TypeExpr
}

func (*IndexedAccessTypeExpr) typeExprNode() {}

// ParenthesizedTypeExpr preserves explicit grouping written by the
// author: "(A | B)[]".
type ParenthesizedTypeExpr struct {
	base
	Inner TypeExpr
}

func (*ParenthesizedTypeExpr) typeExprNode() {}

// TypeQueryExpr is "typeof x" used in type position.
type TypeQueryExpr struct {
	base
	ExprName string
}

func (*TypeQueryExpr) typeExprNode() {}

// KeyofTypeExpr is "keyof T".
type KeyofTypeExpr struct {
	base
	Operand TypeExpr
}

func (*KeyofTypeExpr) typeExprNode() {}

// InferTypeExpr is "infer R" inside a conditional type's Extends arm.
type InferTypeExpr struct {
	base
	Name string
}

func (*InferTypeExpr) typeExprNode() {}

// OptionalTypeExpr is the rare "T?" tuple-element marker.
type OptionalTypeExpr struct {
	base
	Inner TypeExpr
}

func (*OptionalTypeExpr) typeExprNode() {}

// RestTypeExpr is "...T" inside a tuple type.
type RestTypeExpr struct {
	base
	Inner TypeExpr
}

func (*RestTypeExpr) typeExprNode() {}

// MappedTypeExpr is the rare "{ [K in Keys]: T }" form.
type MappedTypeExpr struct {
	base
	KeyName   string
	Keys      TypeExpr
	ValueType TypeExpr
	Readonly  bool
	Optional  bool
}

func (*MappedTypeExpr) typeExprNode() {}
