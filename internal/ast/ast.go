// Package ast defines the surface syntax tree produced by internal/parser.
//
// Every node carries a source.Span covering its full extent.
package ast

import "freya/internal/source"

// File is the root of a parsed source file: a sequence of top-level items.
type File struct {
	Items []Item
	Span  source.Span
}

// Item is a top-level declaration: either a let-binding or a type
// declaration.
type Item interface {
	itemNode()
	Pos() source.Span
}

// LetItem binds a name to a value at the top level.
type LetItem struct {
	Binding TypedBinding
	Body    Expr
	Span    source.Span
}

// TypeItem declares an inductive type with parameters, indexes, an optional
// universe ascription, and a set of constructors.
type TypeItem struct {
	Name             Name
	ParamsAndIndexes []ParameterOrIndex
	Universe         Expr // nil if not given
	Constructors     []Constructor
	Span             source.Span
}

func (LetItem) itemNode()  {}
func (TypeItem) itemNode() {}

func (i LetItem) Pos() source.Span  { return i.Span }
func (i TypeItem) Pos() source.Span { return i.Span }

// Expr is any surface expression form.
type Expr interface {
	exprNode()
	Pos() source.Span
}

// FnLowercase is a lambda: "fn(args) body" or "fn(args) -> R, body".
type FnLowercase struct {
	Args       []TypedBinding
	ReturnType Expr // nil if absent (the common case — the core derives it)
	Body       Expr
	Span       source.Span
}

// FnUppercase is a Π-type: "Fn(args) -> R".
type FnUppercase struct {
	Args       []TypedBinding
	ReturnType Expr
	Span       source.Span
}

// Block is a sequence of let and return statements. Parseable, but
// rejected by the core (internal/lower) as an unsupported construct.
type Block struct {
	Statements []Statement
	Span       source.Span
}

// Grouping is a parenthesized expression; transparent to lowering.
type Grouping struct {
	Inner Expr
	Span  source.Span
}

// Application is left applied to right: juxtaposition in the surface
// syntax, left-associative.
type Application struct {
	Left  Expr
	Right Expr
	Span  source.Span
}

// Value references a name, possibly via a multi-segment "::" path. The core
// only accepts single-segment paths; longer ones are a lowering error.
type Value struct {
	Path []string
	Span source.Span
}

// Set is the universe literal "*" ("'"-suffixed to raise the level: "*"
// is Set{0}, "*'" is Set{1}, and so on).
type Set struct {
	Level int
	Span  source.Span
}

// Prop is the universe literal "?".
type Prop struct {
	Span source.Span
}

func (FnLowercase) exprNode() {}
func (FnUppercase) exprNode() {}
func (Block) exprNode()       {}
func (Grouping) exprNode()    {}
func (Application) exprNode() {}
func (Value) exprNode()       {}
func (Set) exprNode()         {}
func (Prop) exprNode()        {}

func (e FnLowercase) Pos() source.Span { return e.Span }
func (e FnUppercase) Pos() source.Span { return e.Span }
func (e Block) Pos() source.Span       { return e.Span }
func (e Grouping) Pos() source.Span    { return e.Span }
func (e Application) Pos() source.Span { return e.Span }
func (e Value) Pos() source.Span       { return e.Span }
func (e Set) Pos() source.Span         { return e.Span }
func (e Prop) Pos() source.Span        { return e.Span }

// TypedBinding is a binding together with its optional ascribed type.
// Lambda and Π parameters require AscribedType to be present; the core
// rejects a nil one.
type TypedBinding struct {
	Binding      Binding
	AscribedType Expr // nil if omitted in the surface syntax
	Span         source.Span
}

// Binding is either a named identifier or the wildcard "_".
type Binding interface {
	bindingNode()
	Pos() source.Span
}

// Identifier is a named binding.
type Identifier struct {
	Name string
	Span source.Span
}

// Underscore is the wildcard binding "_", never added to the name map.
type Underscore struct {
	Span source.Span
}

func (Identifier) bindingNode() {}
func (Underscore) bindingNode() {}

func (b Identifier) Pos() source.Span { return b.Span }
func (b Underscore) Pos() source.Span { return b.Span }

// Name is a bare identifier, used for type and constructor names.
type Name struct {
	Value string
	Span  source.Span
}

// Statement is one entry in a Block: a let-binding or a return.
type Statement interface {
	statementNode()
	Pos() source.Span
}

// Let is a local binding within a Block.
type Let struct {
	Binding TypedBinding
	Body    Expr
	Span    source.Span
}

// Return is a return statement within a Block.
type Return struct {
	Body Expr
	Span source.Span
}

func (Let) statementNode()    {}
func (Return) statementNode() {}

func (s Let) Pos() source.Span    { return s.Span }
func (s Return) Pos() source.Span { return s.Span }

// ParameterOrIndex is one entry in a type declaration's parameter list:
// either a named parameter or an index (introduced by a leading "@").
type ParameterOrIndex interface {
	parameterOrIndexNode()
	Pos() source.Span
}

// Parameter is a named, ascribed parameter of a type declaration.
type Parameter struct {
	Binding      Binding
	AscribedType Expr
	Span         source.Span
}

// Index is an unnamed index of a type declaration, introduced by "@".
type Index struct {
	AscribedType Expr
	Span         source.Span
}

func (Parameter) parameterOrIndexNode() {}
func (Index) parameterOrIndexNode()     {}

func (p Parameter) Pos() source.Span { return p.Span }
func (p Index) Pos() source.Span     { return p.Span }

// Constructor is one constructor declaration within a type body.
type Constructor struct {
	Name            Name
	ConstructorType Expr
	Span            source.Span
}
