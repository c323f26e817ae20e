// Package docnum formats sequential document numbers.
package docnum

import (
	"fmt"
	"time"

	"github.com/bizease/bizease_backend/internal/core/domain"
)

// Prefixes per document kind.
const (
	SalesPrefix    = "INV"
	PurchasePrefix = "PUR"
)

// Format renders a document number like INV/25/0004. The sequence is the
// count of existing documents of that kind plus one; callers must derive it
// inside the same transaction that inserts the document.
func Format(kind domain.DocumentKind, date time.Time, sequence int) string {
	prefix := SalesPrefix
	if kind == domain.PurchaseBill {
		prefix = PurchasePrefix
	}
	return fmt.Sprintf("%s/%02d/%04d", prefix, date.Year()%100, sequence)
}
