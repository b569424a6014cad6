package values

import "testing"

func TestPrimitiveCompatibility(t *testing.T) {
	if !Number.CompatibleWith(Number) {
		t.Error("Number should be compatible with itself")
	}
	if Number.CompatibleWith(String) {
		t.Error("Number should not be compatible with String")
	}
	if Boolean.CompatibleWith(Number) {
		t.Error("Boolean should not be compatible with Number")
	}
}

func TestIgnoreTypeIsCompatibleWithEverything(t *testing.T) {
	if !Ignore.CompatibleWith(Number) {
		t.Error("Ignore should be compatible with Number")
	}
	if !Number.CompatibleWith(Ignore) {
		t.Error("Number should be compatible with Ignore")
	}
	composite := NewCompositeType("Widget")
	if !Ignore.CompatibleWith(composite) {
		t.Error("Ignore should be compatible with any composite type")
	}
}

func TestCompositeIdentityIsNominal(t *testing.T) {
	a := NewCompositeType("Point")
	a.AddField("x", Number)
	a.AddField("y", Number)

	b := NewCompositeType("Point")
	b.AddField("x", Number)
	b.AddField("y", Number)

	if !a.CompatibleWith(b) {
		t.Error("two composite types with the same id and field shape should be compatible")
	}

	c := NewCompositeType("Vector")
	c.AddField("x", Number)
	c.AddField("y", Number)

	if a.CompatibleWith(c) {
		t.Error("composite types with differing ids should not be compatible even with identical field shape")
	}
}

func TestFunctionTypeForkIsolatesPlaceholderBindings(t *testing.T) {
	placeholders := NewPlaceholders()
	t_ := placeholders.Add("T")
	fn := &FunctionType{
		Parameters:   []Type{t_},
		ReturnType:   t_,
		Placeholders: placeholders,
	}

	first := fn.Fork()
	first.Placeholders.ByName["T"].Bind(Number)

	second := fn.Fork()
	second.Placeholders.ByName["T"].Bind(String)

	if !first.Parameters[0].CompatibleWith(Number) {
		t.Error("first fork's parameter should resolve through its own binding to Number")
	}
	if !second.Parameters[0].CompatibleWith(String) {
		t.Error("second fork's parameter should resolve through its own binding to String")
	}
	if first.Parameters[0].CompatibleWith(String) {
		t.Error("first fork's binding must not leak into values compatible with the second fork's binding")
	}

	// The original, unforked placeholder must remain unbound.
	if fn.Placeholders.ByName["T"].Bound != nil {
		t.Error("forking must not mutate the original placeholder set")
	}
}

func TestCompositeTypeForkRemapsFieldPlaceholders(t *testing.T) {
	placeholders := NewPlaceholders()
	t_ := placeholders.Add("T")
	box := &CompositeType{
		Id:           "Box",
		FieldOrder:   []string{"value"},
		Fields:       map[string]Type{"value": t_},
		Placeholders: placeholders,
	}

	forked := box.Fork()
	forked.Placeholders.ByName["T"].Bind(String)

	fieldType, _ := forked.FieldType("value")
	if !fieldType.CompatibleWith(String) {
		t.Error("forked composite's field type should resolve through the forked placeholder's binding")
	}
	if _, ok := box.Fields["value"].(*PlaceholderType); !ok {
		t.Fatal("original composite's field should still reference the original, unbound placeholder")
	}
}

func TestNothingTypeIsSingleton(t *testing.T) {
	if NothingType() != NothingType() {
		t.Error("NothingType should return the same shared instance")
	}
}
