package domain

// State is the soft-delete lifecycle of a record. Records are never
// physically removed while they carry a State; they move to StateDeleted.
type State string

const (
	StateActive  State = "active"
	StateDeleted State = "deleted"
)

func (s State) IsActive() bool { return s == StateActive }

// StateFromActive maps the stored "active" flag used by client documents.
// A missing flag counts as active.
func StateFromActive(active *bool) State {
	if active != nil && !*active {
		return StateDeleted
	}
	return StateActive
}

// StateFromDeleted maps the stored "deleted" flag used by user documents.
// A missing flag counts as active.
func StateFromDeleted(deleted *bool) State {
	if deleted != nil && *deleted {
		return StateDeleted
	}
	return StateActive
}
