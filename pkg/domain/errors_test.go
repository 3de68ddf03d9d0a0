package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/tollgate/tollgate/pkg/domain"
)

func TestUnknownEventError_Message(t *testing.T) {
	err := &domain.UnknownEventError{Event: "reopen"}

	if err.Error() != "reopen does not exist in the workflow." {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestHaltError_MessageIsReason(t *testing.T) {
	err := &domain.HaltError{Reason: "Something did not pass"}

	if err.Error() != "Something did not pass" {
		t.Errorf("expected the bare reason, got: %q", err.Error())
	}
}

func TestHalted_UnwrapsThroughWrapping(t *testing.T) {
	base := &domain.HaltError{Reason: "R"}
	wrapped := fmt.Errorf("transition failed: %w", base)

	halt, ok := domain.Halted(wrapped)
	if !ok {
		t.Fatal("expected Halted to find the HaltError")
	}
	if halt.Reason != "R" {
		t.Errorf("unexpected reason: %q", halt.Reason)
	}

	if _, ok := domain.Halted(errors.New("plain")); ok {
		t.Error("plain errors must not be reported as halts")
	}
}

func TestEventSet_UnionAcrossStates(t *testing.T) {
	states := []domain.StateDef{
		{Name: "open", Events: []domain.Event{"close", "cancel"}},
		{Name: "closed", Events: []domain.Event{"reopen"}},
		{Name: "cancelled"},
	}

	set := domain.EventSet(states)

	for _, e := range []domain.Event{"close", "cancel", "reopen"} {
		if _, ok := set[e]; !ok {
			t.Errorf("expected %s in event set", e)
		}
	}
	if len(set) != 3 {
		t.Errorf("expected 3 events, got %d", len(set))
	}
}
