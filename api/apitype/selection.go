package apitype

type SelectionResult int

const (
	SelectionApplied SelectionResult = iota
	SelectionRejected
)

func (s SelectionResult) String() string {
	switch s {
	case SelectionApplied:
		return "applied"
	case SelectionRejected:
		return "rejected"
	}
	return "unknown"
}
