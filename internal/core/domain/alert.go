package domain

// AlertType classifies a business alert.
type AlertType string

const (
	AlertLowStock       AlertType = "LOW_STOCK"
	AlertOverduePayment AlertType = "OVERDUE_PAYMENT"
	AlertHighExpense    AlertType = "HIGH_EXPENSE"
	AlertSalesDrop      AlertType = "SALES_DROP"
	AlertGSTReminder    AlertType = "GST_REMINDER"
)

// AlertSeverity indicates how urgent an alert is.
type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "INFO"
	SeverityWarning  AlertSeverity = "WARNING"
	SeverityCritical AlertSeverity = "CRITICAL"
)

// Alert is a notification surfaced on the dashboard.
type Alert struct {
	AlertID   string        `json:"alertID"`
	Type      AlertType     `json:"type"`
	Title     string        `json:"title"`
	Message   string        `json:"message"`
	Severity  AlertSeverity `json:"severity"`
	IsRead    bool          `json:"isRead"`
	RelatedID string        `json:"relatedID,omitempty"`
	AuditFields
}
