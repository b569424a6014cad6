// Package values defines the runtime value model and static type model
// shared by the analyzer and interpreter (spec §3 "Symbol values" /
// "Static types"), along with the Env contract that every AST node's
// analyze/resolveType/evaluate/interpret method is threaded through.
//
// Keeping both the type system and the Env contract in one package (with
// no dependency on the ast package) is what lets ast.Statements satisfy
// values.StatementsNode without an import cycle between the AST and the
// concrete environment implementation.
package values

import "strings"

// PrimitiveKind distinguishes the three primitive value kinds.
type PrimitiveKind int

const (
	KindBoolean PrimitiveKind = iota
	KindNumber
	KindString
)

func (k PrimitiveKind) String() string {
	switch k {
	case KindBoolean:
		return "Boolean"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	default:
		return "?"
	}
}

// Type is the common interface of every static type: primitives,
// composites, function types, placeholders, and the Ignore sentinel.
type Type interface {
	String() string
	// CompatibleWith reports type compatibility per spec §3, peeling
	// placeholders on both sides first.
	CompatibleWith(other Type) bool
}

// PrimitiveType is the static type of a Boolean, Number, or String value.
type PrimitiveType struct {
	Kind PrimitiveKind
}

var (
	Boolean = &PrimitiveType{Kind: KindBoolean}
	Number  = &PrimitiveType{Kind: KindNumber}
	String  = &PrimitiveType{Kind: KindString}
)

func (p *PrimitiveType) String() string             { return p.Kind.String() }
func (p *PrimitiveType) CompatibleWith(o Type) bool { return compatible(p, o) }

// PlaceholderType is a generic type parameter of a function or composite
// type. It is unbound by default; Bind sets the binding for the scope of
// a single invocation, Unbind clears it, and Peel resolves to the bound
// type (or itself, if unbound).
type PlaceholderType struct {
	Name  string
	Bound Type
}

// Bind sets the placeholder's binding.
func (p *PlaceholderType) Bind(t Type) { p.Bound = t }

// Unbind clears the placeholder's binding.
func (p *PlaceholderType) Unbind() { p.Bound = nil }

// Peel returns the bound type if set, else the placeholder itself.
func (p *PlaceholderType) Peel() Type {
	if p.Bound != nil {
		return p.Bound
	}
	return p
}

func (p *PlaceholderType) String() string {
	if p.Bound != nil {
		return p.Bound.String()
	}
	return p.Name
}

func (p *PlaceholderType) CompatibleWith(o Type) bool { return compatible(p, o) }

// Placeholders is the ordered set of generic type parameters a
// CompositeType or FunctionType declares. Order is kept alongside the
// by-name map so that invocation-site type arguments ("bind them in
// order to the function's placeholders", spec §4.5 step 4) have a
// well-defined order to bind against.
type Placeholders struct {
	Order  []string
	ByName map[string]*PlaceholderType
}

// NewPlaceholders builds an empty placeholder set.
func NewPlaceholders() *Placeholders {
	return &Placeholders{ByName: make(map[string]*PlaceholderType)}
}

// Add declares a new placeholder name, in order.
func (p *Placeholders) Add(name string) *PlaceholderType {
	ph := &PlaceholderType{Name: name}
	p.Order = append(p.Order, name)
	p.ByName[name] = ph
	return ph
}

// Len reports the number of declared placeholders.
func (p *Placeholders) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Order)
}

// fork clones the placeholder set with fresh, unbound PlaceholderType
// objects, returning both the clone and a mapping from each original
// placeholder object to its clone (used to rewrite field/parameter
// types that reference the originals).
func (p *Placeholders) fork() (*Placeholders, map[*PlaceholderType]*PlaceholderType) {
	clone := NewPlaceholders()
	mapping := make(map[*PlaceholderType]*PlaceholderType, p.Len())
	for _, name := range p.Order {
		orig := p.ByName[name]
		c := clone.Add(orig.Name)
		mapping[orig] = c
	}
	return clone, mapping
}

func remapType(t Type, mapping map[*PlaceholderType]*PlaceholderType) Type {
	if ph, ok := t.(*PlaceholderType); ok {
		if c, ok := mapping[ph]; ok {
			return c
		}
	}
	return t
}

// CompositeType is a nominal record type: identity is its Id, not its
// structure (spec §3, §8 "CompositeType(\"T\") equals CompositeType(\"T\")
// only when ids match").
type CompositeType struct {
	Id           string
	FieldOrder   []string
	Fields       map[string]Type
	Placeholders *Placeholders
}

// NewCompositeType builds a CompositeType with an empty field/placeholder set.
func NewCompositeType(id string) *CompositeType {
	return &CompositeType{
		Id:           id,
		Fields:       make(map[string]Type),
		Placeholders: NewPlaceholders(),
	}
}

// AddField appends a field to the type, preserving declaration order.
func (c *CompositeType) AddField(name string, t Type) {
	if _, exists := c.Fields[name]; !exists {
		c.FieldOrder = append(c.FieldOrder, name)
	}
	c.Fields[name] = t
}

// FieldType looks up a field's declared type.
func (c *CompositeType) FieldType(name string) (Type, bool) {
	t, ok := c.Fields[name]
	return t, ok
}

// Fork clones the composite type with a fresh, independently-bindable
// placeholder set, mirroring FunctionType.Fork (spec §9 "fork() ... per
// invocation").
func (c *CompositeType) Fork() *CompositeType {
	clonedPlaceholders, mapping := c.Placeholders.fork()
	clone := &CompositeType{
		Id:           c.Id,
		FieldOrder:   c.FieldOrder,
		Fields:       make(map[string]Type, len(c.Fields)),
		Placeholders: clonedPlaceholders,
	}
	for name, t := range c.Fields {
		clone.Fields[name] = remapType(t, mapping)
	}
	return clone
}

func (c *CompositeType) String() string             { return c.Id }
func (c *CompositeType) CompatibleWith(o Type) bool { return compatible(c, o) }

// nothingType is the nominal type of the unit value (an empty composite).
var nothingType = NewCompositeType("Nothing")

// NothingType returns the shared nominal type of the unit value.
func NothingType() *CompositeType { return nothingType }

// FunctionType is the static type of a function value: an ordered
// parameter-type list, an optional return type, and a set of generic
// placeholders the function declares.
type FunctionType struct {
	Parameters   []Type
	ReturnType   Type // nil when the function declares no return type
	Placeholders *Placeholders
}

// NewFunctionType builds a FunctionType with an empty placeholder set.
func NewFunctionType(params []Type, ret Type) *FunctionType {
	return &FunctionType{Parameters: params, ReturnType: ret, Placeholders: NewPlaceholders()}
}

// Fork clones the function type with a fresh, independently-bindable
// placeholder set, so that one invocation's placeholder bindings never
// leak into another (spec §4.5 step 4, §9 "fork() the function type").
func (f *FunctionType) Fork() *FunctionType {
	clonedPlaceholders, mapping := f.Placeholders.fork()
	params := make([]Type, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = remapType(p, mapping)
	}
	var ret Type
	if f.ReturnType != nil {
		ret = remapType(f.ReturnType, mapping)
	}
	return &FunctionType{Parameters: params, ReturnType: ret, Placeholders: clonedPlaceholders}
}

func (f *FunctionType) String() string {
	var sb strings.Builder
	sb.WriteString("function(")
	for i, p := range f.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString(")")
	if f.ReturnType != nil {
		sb.WriteString(" -> ")
		sb.WriteString(f.ReturnType.String())
	}
	return sb.String()
}

func (f *FunctionType) CompatibleWith(o Type) bool { return compatible(f, o) }

// IgnoreType is a sentinel meaning "skip downstream checks"; it is used
// for native/opaque stdlib values whose bodies are not analyzable.
type IgnoreType struct{}

// Ignore is the single shared IgnoreType instance.
var Ignore = IgnoreType{}

func (IgnoreType) String() string           { return "<ignore>" }
func (IgnoreType) CompatibleWith(Type) bool { return true }

func peel(t Type) Type {
	if p, ok := t.(*PlaceholderType); ok {
		return p.Peel()
	}
	return t
}

// compatible implements spec §3's typeCompatibleWith rule.
func compatible(a, b Type) bool {
	a, b = peel(a), peel(b)
	if _, ok := a.(IgnoreType); ok {
		return true
	}
	if _, ok := b.(IgnoreType); ok {
		return true
	}
	switch at := a.(type) {
	case *PlaceholderType:
		// An unbound placeholder is compatible only with itself.
		return at == b
	case *PrimitiveType:
		bt, ok := b.(*PrimitiveType)
		return ok && at.Kind == bt.Kind
	case *CompositeType:
		bt, ok := b.(*CompositeType)
		if !ok || at.Id != bt.Id {
			return false
		}
		for name, ft := range at.Fields {
			bf, ok := bt.Fields[name]
			if !ok || !compatible(ft, bf) {
				return false
			}
		}
		return true
	case *FunctionType:
		bt, ok := b.(*FunctionType)
		if !ok || len(at.Parameters) != len(bt.Parameters) {
			return false
		}
		for i := range at.Parameters {
			if !compatible(at.Parameters[i], bt.Parameters[i]) {
				return false
			}
		}
		if (at.ReturnType == nil) != (bt.ReturnType == nil) {
			return false
		}
		if at.ReturnType != nil && !compatible(at.ReturnType, bt.ReturnType) {
			return false
		}
		return true
	default:
		return false
	}
}
