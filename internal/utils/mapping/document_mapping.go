package mapping

import (
	"github.com/bizease/bizease_backend/internal/core/domain"
	"github.com/bizease/bizease_backend/internal/models"
)

// ToDomainDocument converts a document model and its lines to the domain form.
func ToDomainDocument(m models.Document, lines []models.DocumentLine) domain.Document {
	d := domain.Document{
		DocumentID:     m.DocumentID,
		Kind:           domain.DocumentKind(m.Kind),
		DocumentNumber: m.DocumentNumber,
		PartyBillNo:    m.PartyBillNo,
		DocumentDate:   m.DocumentDate,
		DueDate:        m.DueDate,
		PartyID:        m.PartyID,
		PartyName:      m.PartyName,
		PartyGSTIN:     m.PartyGSTIN,
		PartyAddress:   m.PartyAddress,
		PlaceOfSupply:  m.PlaceOfSupply,
		Subtotal:       m.Subtotal,
		TotalCGST:      m.TotalCGST,
		TotalSGST:      m.TotalSGST,
		TotalIGST:      m.TotalIGST,
		RoundOff:       m.RoundOff,
		GrandTotal:     m.GrandTotal,
		AmountPaid:     m.AmountPaid,
		Status:         domain.DocumentStatus(m.Status),
		Notes:          m.Notes,
		Terms:          m.Terms,
		AuditFields:    toDomainAuditFields(m.AuditFields),
	}
	if len(lines) > 0 {
		d.Lines = make([]domain.DocumentLine, 0, len(lines))
		for _, l := range lines {
			d.Lines = append(d.Lines, ToDomainDocumentLine(l))
		}
	}
	return d
}

// ToDomainDocumentLine converts a document line model to its domain form.
func ToDomainDocumentLine(m models.DocumentLine) domain.DocumentLine {
	return domain.DocumentLine{
		LineID:        m.LineID,
		DocumentID:    m.DocumentID,
		ItemID:        m.ItemID,
		Name:          m.Name,
		HSN:           m.HSN,
		Quantity:      m.Quantity,
		Rate:          m.Rate,
		GSTRate:       m.GSTRate,
		TaxableAmount: m.TaxableAmount,
		CGST:          m.CGST,
		SGST:          m.SGST,
		IGST:          m.IGST,
		TotalAmount:   m.TotalAmount,
	}
}

// ToModelDocument converts a domain document to its header model. Lines are
// converted separately via ToModelDocumentLine.
func ToModelDocument(d domain.Document) models.Document {
	return models.Document{
		DocumentID:     d.DocumentID,
		Kind:           string(d.Kind),
		DocumentNumber: d.DocumentNumber,
		PartyBillNo:    d.PartyBillNo,
		DocumentDate:   d.DocumentDate,
		DueDate:        d.DueDate,
		PartyID:        d.PartyID,
		PartyName:      d.PartyName,
		PartyGSTIN:     d.PartyGSTIN,
		PartyAddress:   d.PartyAddress,
		PlaceOfSupply:  d.PlaceOfSupply,
		Subtotal:       d.Subtotal,
		TotalCGST:      d.TotalCGST,
		TotalSGST:      d.TotalSGST,
		TotalIGST:      d.TotalIGST,
		RoundOff:       d.RoundOff,
		GrandTotal:     d.GrandTotal,
		AmountPaid:     d.AmountPaid,
		Status:         string(d.Status),
		Notes:          d.Notes,
		Terms:          d.Terms,
		AuditFields:    toModelAuditFields(d.AuditFields),
	}
}

// ToModelDocumentLine converts a domain document line to its database model.
func ToModelDocumentLine(d domain.DocumentLine) models.DocumentLine {
	return models.DocumentLine{
		LineID:        d.LineID,
		DocumentID:    d.DocumentID,
		ItemID:        d.ItemID,
		Name:          d.Name,
		HSN:           d.HSN,
		Quantity:      d.Quantity,
		Rate:          d.Rate,
		GSTRate:       d.GSTRate,
		TaxableAmount: d.TaxableAmount,
		CGST:          d.CGST,
		SGST:          d.SGST,
		IGST:          d.IGST,
		TotalAmount:   d.TotalAmount,
	}
}
