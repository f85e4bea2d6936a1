package model

// Status is the approval state of an employee record. The server owns it:
// set to pending at creation, moved to approved or rejected only via the
// explicit admin actions. Both outcomes are terminal from the client's side;
// no surface exposes a transition out of them.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the three known states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further transition is exposed for s.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Badge maps a status to its display badge class. The mapping is exhaustive
// over the known states; unknown legacy values fall back to the pending
// badge, matching how the server treats an unset status.
func (s Status) Badge() string {
	switch s {
	case StatusApproved:
		return "badge-approved"
	case StatusRejected:
		return "badge-rejected"
	case StatusPending:
		return "badge-pending"
	default:
		return "badge-pending"
	}
}
