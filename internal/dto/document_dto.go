package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizease/bizease_backend/internal/core/domain"
)

// CreateDocumentLineRequest is one line of a new invoice or bill. Rate and
// GSTRate are optional; when omitted they default from the inventory item
// (selling price for invoices, purchase price for bills).
type CreateDocumentLineRequest struct {
	ItemID   string           `json:"itemID" binding:"required"`
	Quantity decimal.Decimal  `json:"quantity" binding:"required"`
	Rate     *decimal.Decimal `json:"rate"`
	GSTRate  *decimal.Decimal `json:"gstRate"`
}

// CreateDocumentRequest is the payload for creating a sales invoice or
// purchase bill. Totals are never accepted from the client; they are computed
// server side from the lines.
type CreateDocumentRequest struct {
	PartyID       string                      `json:"partyID" binding:"required"`
	PartyBillNo   string                      `json:"partyBillNo" binding:"omitempty,max=50"`
	DocumentDate  time.Time                   `json:"documentDate" binding:"required"`
	DueDate       *time.Time                  `json:"dueDate"`
	PlaceOfSupply string                      `json:"placeOfSupply" binding:"omitempty,max=100"`
	Lines         []CreateDocumentLineRequest `json:"lines" binding:"required,min=1,dive"`
	Notes         string                      `json:"notes" binding:"omitempty,max=1000"`
	Terms         string                      `json:"terms" binding:"omitempty,max=1000"`
}

// RecordPaymentRequest is the payload for recording a payment against a
// document.
type RecordPaymentRequest struct {
	Amount decimal.Decimal    `json:"amount" binding:"required"`
	Date   *time.Time         `json:"date"`
	Mode   domain.PaymentMode `json:"mode" binding:"omitempty,oneof=CASH DIGITAL CREDIT"`
}

// DocumentResponse is the API representation of an invoice or bill. Overdue
// and the outstanding balance are derived at response time.
type DocumentResponse struct {
	domain.Document
	Outstanding decimal.Decimal `json:"outstanding"`
	IsOverdue   bool            `json:"isOverdue"`
}

// ListDocumentsResponse is a cursor page of documents.
type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	NextToken string             `json:"nextToken,omitempty"`
}

// ToDocumentResponse converts a domain document to its response form,
// deriving overdue against the given time.
func ToDocumentResponse(d domain.Document, now time.Time) DocumentResponse {
	return DocumentResponse{
		Document:    d,
		Outstanding: d.Outstanding(),
		IsOverdue:   d.IsOverdue(now),
	}
}

// ToListDocumentsResponse converts a page of domain documents to a list
// response.
func ToListDocumentsResponse(docs []domain.Document, nextToken string, now time.Time) ListDocumentsResponse {
	resp := ListDocumentsResponse{
		Documents: make([]DocumentResponse, 0, len(docs)),
		NextToken: nextToken,
	}
	for _, d := range docs {
		resp.Documents = append(resp.Documents, ToDocumentResponse(d, now))
	}
	return resp
}
