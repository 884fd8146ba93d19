package sale

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the session can no longer be mutated.
// Terminal sessions only leave memory via discard.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
