package view

// Grant status values tracked through the application lifecycle.
const (
	StatusApproved       = "Approved"
	StatusDeclined       = "Declined"
	StatusMissedDeadline = "Missed Deadline"
	StatusPending        = "Pending"
	StatusIncomplete     = "Incomplete"
	StatusInactive       = "Inactive"
)

// KnownStatuses lists the closed status enum in display order.
var KnownStatuses = []string{
	StatusApproved,
	StatusDeclined,
	StatusMissedDeadline,
	StatusPending,
	StatusIncomplete,
	StatusInactive,
}

// StatusBadge is the display classification of a grant status: a color
// pairing and a tooltip. Unknown statuses carry the raw label only.
type StatusBadge struct {
	Label     string `json:"label"`
	TextColor string `json:"text_color,omitempty"`
	BgColor   string `json:"bg_color,omitempty"`
	Tooltip   string `json:"tooltip,omitempty"`
	Known     bool   `json:"known"`
}

// ClassifyStatus maps a grant status to its badge. Total over any input
// string: unrecognized values render as plain text with no color pairing
// and no tooltip, never an error.
func ClassifyStatus(status string) StatusBadge {
	switch status {
	case StatusApproved:
		return StatusBadge{
			Label:     status,
			TextColor: "green-800",
			BgColor:   "green-100",
			Tooltip:   "Grant has been approved and funds were received",
			Known:     true,
		}
	case StatusDeclined:
		return StatusBadge{
			Label:     status,
			TextColor: "red-700",
			BgColor:   "red-200",
			Tooltip:   "Grant application has been denied",
			Known:     true,
		}
	case StatusMissedDeadline:
		return StatusBadge{
			Label:     status,
			TextColor: "yellow-800",
			BgColor:   "yellow-100",
			Tooltip:   "Grant application was not completed before the close date",
			Known:     true,
		}
	case StatusPending:
		return StatusBadge{
			Label:     status,
			TextColor: "blue-700",
			BgColor:   "blue-100",
			Tooltip:   "Grant has been applied for and decision is pending",
			Known:     true,
		}
	case StatusIncomplete:
		return StatusBadge{
			Label:     status,
			TextColor: "cyan-900",
			BgColor:   "cyan-200",
			Tooltip:   "Grant application has been started but is missing important information",
			Known:     true,
		}
	case StatusInactive:
		return StatusBadge{
			Label:     status,
			TextColor: "gray-800",
			BgColor:   "gray-300",
			Tooltip:   "Grant resources were fully used",
			Known:     true,
		}
	default:
		return StatusBadge{Label: status}
	}
}

// IsKnownStatus reports whether status belongs to the closed enum.
func IsKnownStatus(status string) bool {
	return ClassifyStatus(status).Known
}
