package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bizease/bizease_backend/internal/core/domain"
	portsrepo "github.com/bizease/bizease_backend/internal/core/ports/repositories"
	portssvc "github.com/bizease/bizease_backend/internal/core/ports/services"
	"github.com/bizease/bizease_backend/internal/dto"
	"github.com/bizease/bizease_backend/internal/middleware"
)

// documentHandler serves invoices and purchase bills. The kind is fixed per
// route group so the two share every handler.
type documentHandler struct {
	documentService portssvc.DocumentSvc
	kind            domain.DocumentKind
}

func newDocumentHandler(ds portssvc.DocumentSvc, kind domain.DocumentKind) *documentHandler {
	return &documentHandler{documentService: ds, kind: kind}
}

// registerDocumentRoutes registers the /invoices and /purchases groups.
func registerDocumentRoutes(rg *gin.RouterGroup, ds portssvc.DocumentSvc) {
	for path, kind := range map[string]domain.DocumentKind{
		"/invoices":  domain.SalesInvoice,
		"/purchases": domain.PurchaseBill,
	} {
		h := newDocumentHandler(ds, kind)
		group := rg.Group(path)
		{
			group.POST("", h.createDocument)
			group.GET("", h.listDocuments)
			group.GET("/:id", h.getDocument)
			group.POST("/:id/payments", h.recordPayment)
			group.DELETE("/:id", h.deleteDocument)
		}
	}
}

func (h *documentHandler) createDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDocument", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	doc, err := h.documentService.CreateDocument(c.Request.Context(), userID, h.kind, req)
	if err != nil {
		logger.Error("Failed to create document", slog.String("kind", string(h.kind)), slog.String("error", err.Error()))
		respondError(c, err, "Failed to create document")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc, time.Now()))
}

func (h *documentHandler) listDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params := portsrepo.ListDocumentsParams{
		Kind:      h.kind,
		PartyID:   c.Query("partyID"),
		Status:    domain.DocumentStatus(c.Query("status")),
		NextToken: c.Query("nextToken"),
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		params.Limit = limit
	}
	for _, q := range []struct {
		name   string
		target **time.Time
	}{
		{"dateFrom", &params.DateFrom},
		{"dateTo", &params.DateTo},
	} {
		if v := c.Query(q.name); v != "" {
			t, err := time.Parse("2006-01-02", v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": q.name + " must be YYYY-MM-DD"})
				return
			}
			*q.target = &t
		}
	}

	docs, nextToken, err := h.documentService.ListDocuments(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list documents", slog.String("error", err.Error()))
		respondError(c, err, "Failed to list documents")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDocumentsResponse(docs, nextToken, time.Now()))
}

func (h *documentHandler) getDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	doc, err := h.documentService.GetDocumentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.Warn("Failed to get document", slog.String("error", err.Error()))
		respondError(c, err, "Failed to retrieve document")
		return
	}
	if doc.Kind != h.kind {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc, time.Now()))
}

func (h *documentHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	doc, err := h.documentService.RecordPayment(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		logger.Warn("Failed to record payment", slog.String("document_id", c.Param("id")), slog.String("error", err.Error()))
		respondError(c, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc, time.Now()))
}

func (h *documentHandler) deleteDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.documentService.DeleteDocument(c.Request.Context(), c.Param("id")); err != nil {
		logger.Warn("Failed to delete document", slog.String("error", err.Error()))
		respondError(c, err, "Failed to delete document")
		return
	}
	c.Status(http.StatusNoContent)
}
