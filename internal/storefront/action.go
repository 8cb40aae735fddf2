// internal/storefront/action.go
package storefront

import (
	"errors"
	"fmt"
	"strconv"

	"storefront/internal/cart"
	"storefront/internal/catalog"
)

var ErrInvalidAction = errors.New("invalid action")

// ActionKind names one of the four user actions.
type ActionKind string

const (
	ActionAdd      ActionKind = "add"
	ActionIncrease ActionKind = "increase"
	ActionDecrease ActionKind = "decrease"
	ActionRemove   ActionKind = "remove"
)

// Action is a user action targeting one catalog item.
type Action struct {
	Kind   ActionKind
	ItemID catalog.ItemID
}

// ParseAction validates an action kind and the item id taken from the interacted element.
func ParseAction(kind, rawID string) (Action, error) {
	switch ActionKind(kind) {
	case ActionAdd, ActionIncrease, ActionDecrease, ActionRemove:
	default:
		return Action{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidAction, kind)
	}

	id, err := strconv.Atoi(rawID)
	if err != nil || id <= 0 {
		return Action{}, fmt.Errorf("%w: bad item id %q", ErrInvalidAction, rawID)
	}

	return Action{Kind: ActionKind(kind), ItemID: catalog.ItemID(id)}, nil
}

func (a Action) apply(ledger *cart.Ledger) error {
	switch a.Kind {
	case ActionAdd:
		return ledger.Add(a.ItemID)
	case ActionIncrease:
		return ledger.Increase(a.ItemID)
	case ActionDecrease:
		return ledger.Decrease(a.ItemID)
	case ActionRemove:
		ledger.Remove(a.ItemID)
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidAction, a.Kind)
	}
}

// outcome is the metric label for the result of an action.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, cart.ErrUnknownItem):
		return "unknown_item"
	case errors.Is(err, cart.ErrNotInCart):
		return "not_in_cart"
	case errors.Is(err, cart.ErrAlreadyInCart):
		return "already_in_cart"
	default:
		return "error"
	}
}
