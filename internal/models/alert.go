package models

// Alert is the database model for dashboard notifications.
type Alert struct {
	AlertID   string
	Type      string
	Title     string
	Message   string
	Severity  string
	IsRead    bool
	RelatedID string
	AuditFields
}
