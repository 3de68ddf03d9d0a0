package tollgate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/tollgate/tollgate"
	"github.com/tollgate/tollgate/internal/testutils"
	"github.com/tollgate/tollgate/pkg/domain"
)

func TestRunCallbacks_InsertionOrder(t *testing.T) {
	hooks := tollgate.New(testutils.OpenClosed())

	var ran []string
	record := func(name string) tollgate.Action {
		return func(ctx context.Context, tc domain.Context) error {
			ran = append(ran, name)
			return nil
		}
	}

	for _, name := range []string{"c1", "c2", "c3"} {
		if err := hooks.AttachBeforeCallback("close", record("before_"+name)); err != nil {
			t.Fatalf("attach before failed: %v", err)
		}
		if err := hooks.AttachAfterCallback("close", record("after_"+name)); err != nil {
			t.Fatalf("attach after failed: %v", err)
		}
	}

	ctx := context.Background()
	tc := domain.Context{Event: "close"}
	if err := hooks.RunBeforeCallbacks(ctx, "close", tc); err != nil {
		t.Fatalf("before run failed: %v", err)
	}
	if err := hooks.RunAfterCallbacks(ctx, "close", tc); err != nil {
		t.Fatalf("after run failed: %v", err)
	}

	want := []string{"before_c1", "before_c2", "before_c3", "after_c1", "after_c2", "after_c3"}
	if len(ran) != len(want) {
		t.Fatalf("expected %d callback runs, got %v", len(want), ran)
	}
	for i := range want {
		if ran[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], ran[i])
		}
	}
}

func TestRunCallbacks_ErrorAbortsRemainder(t *testing.T) {
	hooks := tollgate.New(testutils.OpenClosed())
	boom := errors.New("boom")

	var ran []string
	_ = hooks.AttachAfterCallback("close", func(ctx context.Context, tc domain.Context) error {
		ran = append(ran, "c1")
		return nil
	})
	_ = hooks.AttachAfterCallback("close", func(ctx context.Context, tc domain.Context) error {
		ran = append(ran, "c2")
		return boom
	})
	_ = hooks.AttachAfterCallback("close", func(ctx context.Context, tc domain.Context) error {
		ran = append(ran, "c3")
		return nil
	})

	err := hooks.RunAfterCallbacks(context.Background(), "close", domain.Context{Event: "close"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the callback error unchanged, got: %v", err)
	}
	if len(ran) != 2 || ran[0] != "c1" || ran[1] != "c2" {
		t.Errorf("expected [c1 c2], got %v", ran)
	}
}

func TestClearAfterCallbacks_RunInvokesNothing(t *testing.T) {
	hooks := tollgate.New(testutils.OpenClosed())

	calls := 0
	_ = hooks.AttachAfterCallback("close", func(ctx context.Context, tc domain.Context) error {
		calls++
		return nil
	})

	hooks.ClearAfterCallbacks()

	if err := hooks.RunAfterCallbacks(context.Background(), "close", domain.Context{Event: "close"}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if calls != 0 {
		t.Errorf("expected zero invocations after clear, got %d", calls)
	}
}

// The bulk before-attacher must feed the before registry, not the after one.
func TestAttachBeforeCallbacks_PopulatesBeforePhase(t *testing.T) {
	hooks := tollgate.New(testutils.OpenClosed())

	var ran []string
	err := hooks.AttachBeforeCallbacks(map[domain.Event][]tollgate.Action{
		"close": {func(ctx context.Context, tc domain.Context) error {
			ran = append(ran, "before")
			return nil
		}},
	})
	if err != nil {
		t.Fatalf("bulk attach failed: %v", err)
	}

	ctx := context.Background()
	tc := domain.Context{Event: "close"}
	if err := hooks.RunAfterCallbacks(ctx, "close", tc); err != nil {
		t.Fatalf("after run failed: %v", err)
	}
	if len(ran) != 0 {
		t.Fatalf("bulk before-attach leaked into the after phase: %v", ran)
	}

	if err := hooks.RunBeforeCallbacks(ctx, "close", tc); err != nil {
		t.Fatalf("before run failed: %v", err)
	}
	if len(ran) != 1 || ran[0] != "before" {
		t.Errorf("expected one before invocation, got %v", ran)
	}
}
