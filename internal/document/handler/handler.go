package handler

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/docqa/docqa/internal/completion"
	"github.com/docqa/docqa/internal/document"
	"github.com/docqa/docqa/internal/document/service"
	"github.com/docqa/docqa/internal/extract"
	"github.com/gin-gonic/gin"
)

// RegisterDocumentRoutes mounts the upload, ask and list endpoints.
func RegisterDocumentRoutes(r gin.IRoutes, svc service.Service) {
	h := &documentHandler{svc: svc}
	r.POST("/upload", h.upload)
	r.POST("/ask", h.ask)
	r.GET("/documents", h.list)
}

type documentHandler struct {
	svc service.Service
}

// Pointers so that a missing field is rejected while an empty one is not;
// an empty document_id falls through to the not-found path.
type askRequest struct {
	Question   *string `json:"question" binding:"required"`
	DocumentID *string `json:"document_id" binding:"required"`
}

// clientFilename returns the filename as sent by the client. The multipart
// reader strips it to its base name, so prefer the raw Content-Disposition.
func clientFilename(fh *multipart.FileHeader) string {
	if _, params, err := mime.ParseMediaType(fh.Header.Get("Content-Disposition")); err == nil {
		if name := params["filename"]; name != "" {
			return name
		}
	}
	return fh.Filename
}

func (h *documentHandler) upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": fmt.Sprintf("Error processing file: %v", err)})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": fmt.Sprintf("Error processing file: %v", err)})
		return
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": fmt.Sprintf("Error processing file: %v", err)})
		return
	}

	d, err := h.svc.Upload(c.Request.Context(), clientFilename(fh), content)
	if err != nil {
		var de *extract.DecodeError
		if errors.As(err, &de) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": de.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"detail": fmt.Sprintf("Error processing file: %v", err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"document_id": d.ID,
		"size":        d.Size(),
		"file_type":   d.FileType,
		"message":     fmt.Sprintf("%s document '%s' uploaded successfully", d.FileType, d.ID),
	})
}

func (h *documentHandler) ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	q := document.QuestionRequest{Question: *req.Question, DocumentID: *req.DocumentID}
	ans, err := h.svc.Ask(c.Request.Context(), q)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("Document '%s' not found. Please upload it first.", q.DocumentID)})
		return
	case err != nil:
		msg := err.Error()
		var pe *completion.ProviderError
		if errors.As(err, &pe) {
			msg = pe.Error()
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error calling Mistral API: " + msg})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"question":    ans.Question,
		"answer":      ans.Answer,
		"document_id": ans.DocumentID,
	})
}

func (h *documentHandler) list(c *gin.Context) {
	docs, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(docs), "documents": docs})
}
