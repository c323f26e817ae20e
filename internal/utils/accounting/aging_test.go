package accounting_test

import (
	"testing"
	"time"

	"github.com/bizease/bizease_backend/internal/core/domain"
	"github.com/bizease/bizease_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var agingToday = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

func unpaidDoc(dueDaysAgo int, outstanding string) domain.Document {
	return domain.Document{
		DueDate:    agingToday.AddDate(0, 0, -dueDaysAgo),
		GrandTotal: dec(outstanding),
		AmountPaid: decimal.Zero,
		Status:     domain.StatusPending,
	}
}

func TestAgeDocuments_BucketAssignment(t *testing.T) {
	tests := []struct {
		name       string
		dueDaysAgo int
		wantBucket string
	}{
		{"due in future is current", -10, accounting.BucketCurrent},
		{"due today", 0, accounting.Bucket0To30},
		{"due 30 days ago stays in 0-30", 30, accounting.Bucket0To30},
		{"due 31 days ago", 31, accounting.Bucket30To60},
		{"due 60 days ago stays in 30-60", 60, accounting.Bucket30To60},
		{"due 90 days ago stays in 60-90", 90, accounting.Bucket60To90},
		{"due 91 days ago", 91, accounting.Bucket90Plus},
		{"due 400 days ago", 400, accounting.Bucket90Plus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buckets := accounting.AgeDocuments([]domain.Document{unpaidDoc(tt.dueDaysAgo, "100")}, agingToday)
			for _, b := range buckets {
				if b.Range == tt.wantBucket {
					assert.Equal(t, 1, b.Count)
					assert.True(t, b.Outstanding.Equal(dec("100")))
				} else {
					assert.Zero(t, b.Count, "unexpected count in bucket %s", b.Range)
				}
			}
		})
	}
}

func TestAgeDocuments_SumsOutstanding(t *testing.T) {
	docs := []domain.Document{
		unpaidDoc(5, "100"),
		unpaidDoc(12, "250"),
		{ // partially paid: only the remainder counts
			DueDate:    agingToday.AddDate(0, 0, -20),
			GrandTotal: dec("500"),
			AmountPaid: dec("200"),
			Status:     domain.StatusPartial,
		},
	}

	buckets := accounting.AgeDocuments(docs, agingToday)
	require.Len(t, buckets, 5)

	assert.Equal(t, 3, buckets[1].Count)
	assert.True(t, buckets[1].Outstanding.Equal(dec("650")), "outstanding = %s", buckets[1].Outstanding)
}

func TestDaysOverdue_UsesCalendarDaysInLocalZone(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)

	// 23:30 IST is already the previous day in UTC; day comparison must
	// follow the timestamp's own calendar, not UTC truncation.
	dueDate := time.Date(2025, 5, 15, 23, 30, 0, 0, ist)
	today := time.Date(2025, 6, 15, 0, 30, 0, 0, ist)

	assert.Equal(t, 31, accounting.DaysOverdue(today, dueDate))

	buckets := accounting.AgeDocuments([]domain.Document{{
		DueDate:    dueDate,
		GrandTotal: dec("100"),
		Status:     domain.StatusPending,
	}}, today)
	assert.Equal(t, 1, buckets[2].Count, "31 calendar days overdue belongs in %s", accounting.Bucket30To60)
}

func TestAgeDocuments_SkipsPaidAndDraft(t *testing.T) {
	docs := []domain.Document{
		{DueDate: agingToday.AddDate(0, 0, -40), GrandTotal: dec("100"), AmountPaid: dec("100"), Status: domain.StatusPaid},
		{DueDate: agingToday.AddDate(0, 0, -40), GrandTotal: dec("100"), Status: domain.StatusDraft},
	}

	for _, b := range accounting.AgeDocuments(docs, agingToday) {
		assert.Zero(t, b.Count)
	}
}
