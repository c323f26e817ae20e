package services

import (
	"context"

	"github.com/bizease/bizease_backend/internal/core/domain"
	"github.com/bizease/bizease_backend/internal/core/ports/repositories"
	"github.com/bizease/bizease_backend/internal/dto"
)

// DocumentReaderSvc reads invoices and bills.
type DocumentReaderSvc interface {
	GetDocumentByID(ctx context.Context, documentID string) (domain.Document, error)
	ListDocuments(ctx context.Context, params repositories.ListDocumentsParams) ([]domain.Document, string, error)
}

// DocumentWriterSvc creates documents and records payments against them.
type DocumentWriterSvc interface {
	CreateDocument(ctx context.Context, userID string, kind domain.DocumentKind, req dto.CreateDocumentRequest) (domain.Document, error)
	RecordPayment(ctx context.Context, userID string, documentID string, req dto.RecordPaymentRequest) (domain.Document, error)
	DeleteDocument(ctx context.Context, documentID string) error
}

// DocumentSvc combines document reads and writes.
type DocumentSvc interface {
	DocumentReaderSvc
	DocumentWriterSvc
}
