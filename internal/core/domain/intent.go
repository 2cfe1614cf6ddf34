package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrUnresolvableToken is returned for correlation tokens that do not name a
// known intent. Callers treat it as "ignore", not as a failure.
var ErrUnresolvableToken = errors.New("unresolvable correlation token")

// IntentKind is the prefix of a correlation token.
type IntentKind string

const (
	IntentWalletRecharge IntentKind = "wallet_recharge"
	IntentSubscription   IntentKind = "subscription"
	IntentCheckout       IntentKind = "checkout"
)

// Intent is what the application meant a provider payment to do. It is
// decoded once from the correlation token embedded at checkout time.
// Implementations: RechargeIntent, SubscriptionIntent, CheckoutIntent.
type Intent interface {
	Kind() IntentKind
	User() uuid.UUID
	Token() string
	intent()
}

// RechargeIntent credits the payer's wallet.
type RechargeIntent struct {
	UserID uuid.UUID
}

func (i RechargeIntent) Kind() IntentKind { return IntentWalletRecharge }
func (i RechargeIntent) User() uuid.UUID  { return i.UserID }
func (i RechargeIntent) Token() string {
	return string(IntentWalletRecharge) + ":" + i.UserID.String()
}
func (RechargeIntent) intent() {}

// SubscriptionIntent activates a plan for the payer.
type SubscriptionIntent struct {
	UserID uuid.UUID
	PlanID string
}

func (i SubscriptionIntent) Kind() IntentKind { return IntentSubscription }
func (i SubscriptionIntent) User() uuid.UUID  { return i.UserID }
func (i SubscriptionIntent) Token() string {
	return string(IntentSubscription) + ":" + i.UserID.String() + ":" + i.PlanID
}
func (SubscriptionIntent) intent() {}

// CheckoutIntent settles a storefront order. The ledger records it but does
// not move wallet funds.
type CheckoutIntent struct {
	UserID  uuid.UUID
	OrderID string
}

func (i CheckoutIntent) Kind() IntentKind { return IntentCheckout }
func (i CheckoutIntent) User() uuid.UUID  { return i.UserID }
func (i CheckoutIntent) Token() string {
	return string(IntentCheckout) + ":" + i.UserID.String() + ":" + i.OrderID
}
func (CheckoutIntent) intent() {}

// ParseCorrelationToken decodes "<kind>:<userId>[:<extra>]".
func ParseCorrelationToken(token string) (Intent, error) {
	parts := strings.SplitN(strings.TrimSpace(token), ":", 3)
	if len(parts) < 2 {
		return nil, ErrUnresolvableToken
	}

	userID, err := uuid.Parse(parts[1])
	if err != nil || userID == uuid.Nil {
		return nil, ErrUnresolvableToken
	}

	extra := ""
	if len(parts) == 3 {
		extra = parts[2]
	}

	switch IntentKind(parts[0]) {
	case IntentWalletRecharge:
		if len(parts) != 2 {
			return nil, ErrUnresolvableToken
		}
		return RechargeIntent{UserID: userID}, nil
	case IntentSubscription:
		if extra == "" {
			return nil, ErrUnresolvableToken
		}
		return SubscriptionIntent{UserID: userID, PlanID: extra}, nil
	case IntentCheckout:
		if extra == "" {
			return nil, ErrUnresolvableToken
		}
		return CheckoutIntent{UserID: userID, OrderID: extra}, nil
	default:
		return nil, ErrUnresolvableToken
	}
}
