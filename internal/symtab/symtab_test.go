package symtab_test

import (
	"testing"

	"github.com/rouge-lang/rouge/internal/symtab"
)

func TestDefineAndFindInTheSameFrame(t *testing.T) {
	s := symtab.New[int]()
	s.Define("x", 1)
	v, ok := s.Find("x")
	if !ok || v != 1 {
		t.Fatalf("expected to find x=1, got %v, %v", v, ok)
	}
}

func TestFindWalksOuterFrames(t *testing.T) {
	s := symtab.New[int]()
	s.Define("x", 1)
	s.Push(false)
	v, ok := s.Find("x")
	if !ok || v != 1 {
		t.Fatalf("expected to find outer x=1 from inner frame, got %v, %v", v, ok)
	}
}

func TestInnerDefineShadowsOuter(t *testing.T) {
	s := symtab.New[int]()
	s.Define("x", 1)
	s.Push(false)
	s.Define("x", 2)
	v, _ := s.Find("x")
	if v != 2 {
		t.Fatalf("expected shadowed x=2, got %v", v)
	}
	s.Pop()
	v, _ = s.Find("x")
	if v != 1 {
		t.Fatalf("expected outer x=1 restored after pop, got %v", v)
	}
}

func TestPopUnwindsDefinitions(t *testing.T) {
	s := symtab.New[int]()
	s.Push(false)
	s.Define("y", 5)
	s.Pop()
	if _, ok := s.Find("y"); ok {
		t.Fatal("expected y to be gone after its frame popped")
	}
}

func TestDepthTracksPushAndPop(t *testing.T) {
	s := symtab.New[int]()
	if s.Depth() != 1 {
		t.Fatalf("expected depth 1 for a fresh stack, got %d", s.Depth())
	}
	s.Push(false)
	s.Push(false)
	if s.Depth() != 3 {
		t.Fatalf("expected depth 3, got %d", s.Depth())
	}
	s.Pop()
	if s.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", s.Depth())
	}
}

func TestInLoopReflectsNearestLoopFrame(t *testing.T) {
	s := symtab.New[int]()
	if s.InLoop() {
		t.Fatal("fresh stack should not report being in a loop")
	}
	s.Push(true)
	if !s.InLoop() {
		t.Fatal("expected InLoop after pushing a loop frame")
	}
	s.Push(false)
	if !s.InLoop() {
		t.Fatal("expected InLoop to still be true inside a non-loop frame nested in a loop")
	}
	s.Pop()
	s.Pop()
	if s.InLoop() {
		t.Fatal("expected InLoop to be false after popping back out of the loop frame")
	}
}

func TestFindMissingNameReturnsZeroValue(t *testing.T) {
	s := symtab.New[string]()
	v, ok := s.Find("nope")
	if ok {
		t.Fatal("expected not found")
	}
	if v != "" {
		t.Fatalf("expected zero value for a miss, got %q", v)
	}
}
