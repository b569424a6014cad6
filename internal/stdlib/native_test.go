package stdlib_test

import (
	"testing"

	"github.com/rouge-lang/rouge/internal/environment"
	"github.com/rouge-lang/rouge/internal/stdlib"
	"github.com/rouge-lang/rouge/internal/values"
)

func TestInstallDefinesEveryNativeBindingAsStdlibAndReadonly(t *testing.T) {
	env := environment.New("", nil, nil, nil)
	stdlib.Install(env)

	for _, name := range stdlib.Names() {
		sym, flags, ok := env.FindStatic(name)
		if !ok {
			t.Fatalf("expected %q to be defined in the static table", name)
		}
		if !flags.Stdlib {
			t.Errorf("expected %q to be flagged Stdlib", name)
		}
		if !flags.Readonly {
			t.Errorf("expected %q to be flagged Readonly", name)
		}
		if sym.ValueType == nil {
			t.Errorf("expected %q to have a static type", name)
		}
	}
}

func TestNativeBindingsAreHiddenOutsideTheirInvocationBracket(t *testing.T) {
	env := environment.New("", nil, nil, nil)
	stdlib.Install(env)

	if _, _, ok := env.FindRuntime("runtime_reverse"); ok {
		t.Fatal("runtime_reverse should not be visible in the runtime table by default")
	}
	previous := env.SetIgnoreRuntimeBindings(false)
	defer env.SetIgnoreRuntimeBindings(previous)
	if _, _, ok := env.FindRuntime("runtime_reverse"); !ok {
		t.Fatal("runtime_reverse should be visible once the reserved slot is unbracketed")
	}
}

func TestPreludeDefinesPublicAliases(t *testing.T) {
	env := environment.New("", nil, nil, nil)
	stdlib.Install(env)
	stdlib.LoadPrelude(env)

	for _, name := range []string{"print", "printNoNewline", "panic", "reverse"} {
		if _, _, ok := env.FindStatic(name); !ok {
			t.Errorf("expected the prelude to define %q", name)
		}
		if _, _, ok := env.FindRuntime(name); !ok {
			t.Errorf("expected the prelude to define a runtime binding for %q", name)
		}
	}
}

func TestRuntimePanicUnwindsAsUserPanic(t *testing.T) {
	defer func() {
		r := recover()
		up, ok := r.(values.UserPanic)
		if !ok {
			t.Fatalf("expected a values.UserPanic, got %#v", r)
		}
		if up.Reason != "boom" {
			t.Errorf("expected reason %q, got %q", "boom", up.Reason)
		}
	}()
	values.RaisePanic("boom")
}

func TestIsNative(t *testing.T) {
	if !stdlib.IsNative("runtime_reverse") {
		t.Error("expected runtime_reverse to be reported as native")
	}
	if stdlib.IsNative("reverse") {
		t.Error("the public alias 'reverse' is prelude source, not a native binding")
	}
}
