package dto

import "github.com/bizease/bizease_backend/internal/core/domain"

// LedgerEntryResponse is the API representation of a day book row.
type LedgerEntryResponse struct {
	domain.LedgerEntry
}

// ListLedgerResponse is a cursor page of ledger entries.
type ListLedgerResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken string                `json:"nextToken,omitempty"`
}

// ToListLedgerResponse converts domain ledger entries to a list response.
func ToListLedgerResponse(entries []domain.LedgerEntry, nextToken string) ListLedgerResponse {
	resp := ListLedgerResponse{
		Entries:   make([]LedgerEntryResponse, 0, len(entries)),
		NextToken: nextToken,
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, LedgerEntryResponse{LedgerEntry: e})
	}
	return resp
}
