package tollgate_test

import (
	"context"
	"fmt"

	"github.com/tollgate/tollgate"
	"github.com/tollgate/tollgate/pkg/domain"
)

type ticketWorkflow struct{}

func (ticketWorkflow) States() []domain.StateDef {
	return []domain.StateDef{
		{Name: "open", Events: []domain.Event{"close"}},
		{Name: "closed"},
	}
}

// Attach a validator and run it from the host's before-transition hook.
func Example() {
	hooks := tollgate.New(ticketWorkflow{})

	_ = hooks.AttachValidator("close", "Ticket still has open subtasks", func(ctx context.Context, tc domain.Context) bool {
		return false
	})

	tc := domain.Context{From: "open", To: "closed", Event: "close"}
	err := hooks.RunValidators(context.Background(), "close", tc)

	if halt, ok := domain.Halted(err); ok {
		fmt.Println("halted:", halt.Reason)
	}
	// Output: halted: Ticket still has open subtasks
}

// Attaching to an event the workflow never declares fails immediately.
func ExampleHooks_AttachValidator() {
	hooks := tollgate.New(ticketWorkflow{})

	err := hooks.AttachValidator("reopen", "never", func(ctx context.Context, tc domain.Context) bool {
		return true
	})
	fmt.Println(err)
	// Output: reopen does not exist in the workflow.
}
