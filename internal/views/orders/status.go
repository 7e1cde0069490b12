package orders

// Status lifecycle, mirrored from the API so the console only offers
// actions the server would accept. completed and cancelled are terminal.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusPreparing  Status = "preparing"
	StatusInDelivery Status = "in_delivery"
	StatusDelivered  Status = "delivered"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Action is a user-facing affordance on an order row.
type Action string

const (
	ActionConfirm Action = "confirm"
	ActionReject  Action = "reject"
	ActionAdvance Action = "advance"
	ActionCancel  Action = "cancel"
)

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Next returns the forward status, if any.
func (s Status) Next() (Status, bool) {
	switch s {
	case StatusConfirmed:
		return StatusPreparing, true
	case StatusPreparing:
		return StatusInDelivery, true
	case StatusInDelivery:
		return StatusDelivered, true
	case StatusDelivered:
		return StatusCompleted, true
	}
	return "", false
}

// CanTransition reports whether from → to is a move the server allows:
// pending to confirmed or cancelled; any in-progress status forward one
// step or to cancelled; nothing out of a terminal status.
func CanTransition(from, to Status) bool {
	if from.Terminal() {
		return false
	}
	if from == StatusPending {
		return to == StatusConfirmed || to == StatusCancelled
	}
	if to == StatusCancelled {
		return true
	}
	next, ok := from.Next()
	return ok && to == next
}

// Actions lists the affordances for an order in the given status. A
// terminal order gets none.
func Actions(s Status) []Action {
	if s.Terminal() {
		return nil
	}
	if s == StatusPending {
		return []Action{ActionConfirm, ActionReject}
	}
	return []Action{ActionAdvance, ActionCancel}
}
