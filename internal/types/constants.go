package types

const ContextViewerKey = "viewer"

// Headers a client uses to describe who is looking at the data. They only
// drive UI affordances and attribution, nothing is rejected based on them.
const (
	HeaderViewerRole = "X-CapSyncer-Role"
	HeaderViewerName = "X-CapSyncer-User"
)

// Known task priorities. The store keeps whatever string it is given.
const (
	PriorityLow      = "Low"
	PriorityNormal   = "Normal"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

// Known task statuses. The store keeps whatever string it is given.
const (
	StatusNotStarted = "Not started"
	StatusInProgress = "In progress"
	StatusCompleted  = "Completed"
	StatusContinuous = "Continuous"
)

var (
	Priorities = []string{PriorityLow, PriorityNormal, PriorityHigh, PriorityCritical}
	Statuses   = []string{StatusNotStarted, StatusInProgress, StatusCompleted, StatusContinuous}
)
