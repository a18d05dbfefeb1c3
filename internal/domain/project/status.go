package project

// Status represents the lifecycle state of a Project. Every project starts
// Active; nothing in the system moves a project to Finished yet.
type Status string

const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// Statuses lists every status in display order.
func Statuses() []Status {
	return []Status{StatusActive, StatusFinished}
}

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusFinished:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
