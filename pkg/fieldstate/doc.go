// Package fieldstate tracks the validation lifecycle of form fields.
//
// Every field starts Untouched. Each evaluation moves it to Valid or Invalid,
// and it can move between those freely on re-evaluation. Clear sends it back
// to Untouched. No state is terminal.
//
//	tracker := fieldstate.New(fieldstate.WithListener(func(ctx context.Context, tr fieldstate.Transition) {
//	    if tr.To == fieldstate.Invalid {
//	        render.ShowError(tr.Field, tr.Message)
//	    }
//	}))
//	tracker.Apply(ctx, table.Evaluate("email", value, values))
package fieldstate
