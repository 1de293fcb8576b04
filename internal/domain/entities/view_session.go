package entities

import "github.com/shopspring/decimal"

// ViewState identifies the active dashboard screen.
type ViewState string

const (
	ViewDashboard            ViewState = "dashboard"
	ViewWithdraw             ViewState = "withdraw"
	ViewWithdrawSuccess      ViewState = "withdraw_success"
	ViewBuyActivation        ViewState = "buy_activation"
	ViewBuyActivationSuccess ViewState = "buy_activation_success"
	ViewHistory              ViewState = "history"
	ViewAdmin                ViewState = "admin"
)

// ViewEvent is a user interaction driving the view state machine.
type ViewEvent string

const (
	ViewEventWithdrawRequested ViewEvent = "withdraw_requested"
	ViewEventWithdrawSucceeded ViewEvent = "withdraw_succeeded"
	ViewEventBuyRequested      ViewEvent = "buy_requested"
	ViewEventBuySucceeded      ViewEvent = "buy_succeeded"
	ViewEventHistoryRequested  ViewEvent = "history_requested"
	ViewEventHiddenTap         ViewEvent = "hidden_tap"
	ViewEventBack              ViewEvent = "back"
)

// HiddenGestureThreshold is the number of taps on the hidden control that
// opens the admin screen.
const HiddenGestureThreshold = 5

// WithdrawalReceipt is the payload carried from Withdraw to WithdrawSuccess.
type WithdrawalReceipt struct {
	AccountNumber string          `json:"accountNumber"`
	BankName      string          `json:"bankName,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      Currency        `json:"currency"`
}

// ViewSession is the per-session view state machine. The zero value is not
// usable; sessions start via NewViewSession.
type ViewSession struct {
	State          ViewState          `json:"state"`
	GestureTaps    int                `json:"gestureTaps"`
	LastWithdrawal *WithdrawalReceipt `json:"lastWithdrawal,omitempty"`
}

// NewViewSession returns a fresh session positioned at the dashboard.
func NewViewSession() ViewSession {
	return ViewSession{State: ViewDashboard}
}

// ViewEventInput represents a posted view event
type ViewEventInput struct {
	Event      ViewEvent          `json:"event" binding:"required"`
	Withdrawal *WithdrawalReceipt `json:"withdrawal,omitempty"`
}

// Apply transitions the session with the given event. It returns the new
// session value; the receiver is not mutated. The gesture counter survives
// every transition except reaching the threshold, which resets it.
func (s ViewSession) Apply(event ViewEvent, receipt *WithdrawalReceipt) (ViewSession, bool) {
	next := s

	switch s.State {
	case ViewDashboard:
		switch event {
		case ViewEventWithdrawRequested:
			next.State = ViewWithdraw
		case ViewEventBuyRequested:
			next.State = ViewBuyActivation
		case ViewEventHistoryRequested:
			next.State = ViewHistory
		case ViewEventHiddenTap:
			next.GestureTaps++
			if next.GestureTaps >= HiddenGestureThreshold {
				next.State = ViewAdmin
				next.GestureTaps = 0
			}
		case ViewEventBack:
			// Already home; no-op.
		default:
			return s, false
		}
	case ViewWithdraw:
		switch event {
		case ViewEventWithdrawSucceeded:
			next.State = ViewWithdrawSuccess
			next.LastWithdrawal = receipt
		case ViewEventBack:
			next.State = ViewDashboard
		default:
			return s, false
		}
	case ViewBuyActivation:
		switch event {
		case ViewEventBuySucceeded:
			next.State = ViewBuyActivationSuccess
		case ViewEventBack:
			next.State = ViewDashboard
		default:
			return s, false
		}
	case ViewWithdrawSuccess, ViewBuyActivationSuccess, ViewHistory, ViewAdmin:
		if event != ViewEventBack {
			return s, false
		}
		next.State = ViewDashboard
	default:
		return s, false
	}

	// The carried payload only matters on the success screen.
	if next.State != ViewWithdrawSuccess {
		next.LastWithdrawal = nil
	}
	return next, true
}
