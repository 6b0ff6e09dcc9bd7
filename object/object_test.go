package object

import (
	"context"
	stderrors "errors"
	"reflect"
	"testing"

	metaruntime "github.com/objkit/meta-runtime"
	"github.com/objkit/meta-runtime/errors"
)

func incBody(ctx context.Context, self metaruntime.Composable, args ...any) (any, error) {
	n := Int(self, "n") + 1
	self.Set("n", n)
	return n, nil
}

func TestObject_Slots(t *testing.T) {
	o := New()

	if _, ok := o.Method("inc"); ok {
		t.Fatal("Empty object should have no slots")
	}

	o.SetMethod("inc", incBody)
	if _, ok := o.Method("inc"); !ok {
		t.Fatal("Method lookup failed after SetMethod")
	}

	if !o.RemoveMethod("inc") {
		t.Fatal("RemoveMethod should report an existing slot")
	}
	if o.RemoveMethod("inc") {
		t.Fatal("RemoveMethod should report an absent slot")
	}
	if _, ok := o.Method("inc"); ok {
		t.Fatal("Slot still present after RemoveMethod")
	}
}

func TestObject_MethodNamesSorted(t *testing.T) {
	o := New()
	o.SetMethod("zeta", incBody)
	o.SetMethod("alpha", incBody)
	o.SetMethod("mid", incBody)

	got := o.MethodNames()
	want := []string{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
}

func TestObject_Call(t *testing.T) {
	ctx := context.Background()
	o := New()
	o.SetMethod("inc", incBody)

	v, err := o.Call(ctx, "inc")
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if v != 1 {
		t.Fatalf("Expected 1, got %v", v)
	}

	v, err = o.Call(ctx, "inc")
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if v != 2 {
		t.Fatalf("Expected 2, got %v", v)
	}
}

func TestObject_CallMissingMethod(t *testing.T) {
	o := NewNamed("account")

	_, err := o.Call(context.Background(), "total")
	if err == nil {
		t.Fatal("Expected dispatch error for absent slot")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDispatch, Kind: errors.KindMissingMethod}) {
		t.Fatalf("Expected missing_method dispatch error, got: %v", err)
	}
}

func TestObject_FreshLookup(t *testing.T) {
	ctx := context.Background()
	o := New()
	o.SetMethod("answer", func(ctx context.Context, self metaruntime.Composable, args ...any) (any, error) {
		return 1, nil
	})

	if v, _ := o.Call(ctx, "answer"); v != 1 {
		t.Fatalf("Expected 1, got %v", v)
	}

	// Replacing the slot must be observable on the next lookup.
	o.SetMethod("answer", func(ctx context.Context, self metaruntime.Composable, args ...any) (any, error) {
		return 2, nil
	})

	if v, _ := o.Call(ctx, "answer"); v != 2 {
		t.Fatalf("Expected 2 after slot replacement, got %v", v)
	}
}

func TestObject_Fields(t *testing.T) {
	o := New()

	if _, ok := o.Get("sum"); ok {
		t.Fatal("Empty object should have no fields")
	}

	o.Set("sum", 5)
	v, ok := o.Get("sum")
	if !ok || v != 5 {
		t.Fatalf("Expected 5, got %v (ok=%v)", v, ok)
	}

	if Int(o, "sum") != 5 {
		t.Fatal("Int helper should read the field")
	}
	if Int(o, "absent") != 0 {
		t.Fatal("Int helper should zero-default an absent field")
	}
	o.Set("label", "x")
	if Int(o, "label") != 0 {
		t.Fatal("Int helper should zero-default a non-int field")
	}
}
