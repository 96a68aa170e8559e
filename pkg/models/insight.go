package models

// Insight is the envelope for anything the core wants to deliver to a
// user: job outputs, agent findings, digest availability.
type Insight struct {
	UserID   string
	Priority Priority
	Category InsightCategory
	Title    string
	Message  string

	// Optional enrichments.
	Link        string
	RichContent map[string]interface{}
	Suggestions []string
	Metadata    map[string]interface{}
}

// Decision reports how the proactive router delivered an insight.
type Decision struct {
	Channel DeliveryChannel

	// NotificationID is set when a notification record was created.
	NotificationID string
}
