package accounting

import (
	"time"

	"github.com/bizease/bizease_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Aging bucket labels, in ascending days-overdue order.
const (
	BucketCurrent = "Current"
	Bucket0To30   = "0-30 Days"
	Bucket30To60  = "30-60 Days"
	Bucket60To90  = "60-90 Days"
	Bucket90Plus  = "90+ Days"
)

// DaysOverdue returns the whole days elapsed since the due date, negative
// when the due date is still in the future. Each timestamp is reduced to its
// calendar date in its own location first, so a due date just before local
// midnight is not pushed a day either way when it crosses UTC midnight.
func DaysOverdue(today, dueDate time.Time) int {
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	d := time.Date(dueDate.Year(), dueDate.Month(), dueDate.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(d).Hours() / 24)
}

// AgeDocuments buckets unpaid documents by days overdue. Boundary days go to
// the lower bucket: an invoice due exactly 30 days ago lands in "0-30 Days".
// Paid and draft documents are skipped.
func AgeDocuments(docs []domain.Document, today time.Time) []domain.AgingBucket {
	buckets := []domain.AgingBucket{
		{Range: BucketCurrent, Outstanding: decimal.Zero},
		{Range: Bucket0To30, Outstanding: decimal.Zero},
		{Range: Bucket30To60, Outstanding: decimal.Zero},
		{Range: Bucket60To90, Outstanding: decimal.Zero},
		{Range: Bucket90Plus, Outstanding: decimal.Zero},
	}

	for _, doc := range docs {
		if doc.Status == domain.StatusPaid || doc.Status == domain.StatusDraft {
			continue
		}
		days := DaysOverdue(today, doc.DueDate)

		var idx int
		switch {
		case days < 0:
			idx = 0
		case days <= 30:
			idx = 1
		case days <= 60:
			idx = 2
		case days <= 90:
			idx = 3
		default:
			idx = 4
		}

		buckets[idx].Count++
		buckets[idx].Outstanding = buckets[idx].Outstanding.Add(doc.Outstanding())
	}

	return buckets
}
