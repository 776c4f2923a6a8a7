package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/calvacorro/legal-records-api/internal/api/metrics"
	"github.com/calvacorro/legal-records-api/internal/core/ports"
)

const otherDocumentRequiredMsg = "El campo '%s' es requerido."

// OtherDocumentHandler handles HTTP requests for other documents ("otros").
type OtherDocumentHandler struct {
	service ports.OtherDocumentService
}

func NewOtherDocumentHandler(service ports.OtherDocumentService) *OtherDocumentHandler {
	return &OtherDocumentHandler{service: service}
}

// Create stores a document record and provisions its folder.
//
// @Summary      Create an other document
// @Tags         others
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body      otherDocumentRequest  true  "Document"
// @Success      201   {object}  otherDocumentCreatedResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /other [post]
func (h *OtherDocumentHandler) Create(c echo.Context) error {
	var req otherDocumentRequest
	if err := bindAndValidate(c, &req, otherDocumentRequiredMsg); err != nil {
		return err
	}

	doc, err := h.service.Create(c.Request().Context(), toOtherDocumentInput(req))
	if err != nil {
		return err
	}
	metrics.RecordsCreatedTotal.WithLabelValues(metrics.EntityOther).Inc()

	return c.JSON(http.StatusCreated, otherDocumentCreatedResponse{
		Message:             `Archivo "Otro" creado exitosamente. Ahora puedes subir documentos en la sección de edición.`,
		ID:                  doc.ID,
		OtherFile:           toOtherDocumentView(doc),
		GoogleDriveFolderID: doc.DriveFolderID,
	})
}

// List returns every other document.
//
// @Summary      List other documents
// @Tags         others
// @Produce      json
// @Success      200  {array}   otherDocumentView
// @Failure      500  {object}  map[string]string
// @Router       /others [get]
func (h *OtherDocumentHandler) List(c echo.Context) error {
	list, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]otherDocumentView, 0, len(list))
	for _, d := range list {
		out = append(out, toOtherDocumentView(d))
	}
	return c.JSON(http.StatusOK, out)
}

// ListDocuments lists the files stored in the document's folder.
//
// @Summary      List other document files
// @Tags         others
// @Produce      json
// @Param        id   path      string  true  "Document ID"
// @Success      200  {array}   storedFileView
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /other/{id}/documents [get]
func (h *OtherDocumentHandler) ListDocuments(c echo.Context) error {
	files, err := h.service.ListDocuments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStoredFileViews(files))
}

// Get returns one other document.
//
// @Summary      Get an other document
// @Tags         others
// @Produce      json
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  otherDocumentView
// @Failure      404  {object}  map[string]string
// @Router       /other/{id} [get]
func (h *OtherDocumentHandler) Get(c echo.Context) error {
	doc, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOtherDocumentView(doc))
}

// Update merges the sent fields over the stored document.
//
// @Summary      Update an other document
// @Tags         others
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        id    path      string                true  "Document ID"
// @Param        body  body      otherDocumentRequest  true  "Document with _method=PUT"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      405   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /other/{id} [post]
func (h *OtherDocumentHandler) Update(c echo.Context) error {
	var req otherDocumentRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := requirePutOverride(req.Method); err != nil {
		return err
	}
	if err := validate(c, &req, otherDocumentRequiredMsg); err != nil {
		return err
	}

	if _, err := h.service.Update(c.Request().Context(), c.Param("id"), toOtherDocumentInput(req)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: `Archivo "Otro" actualizado correctamente.`})
}

// Delete removes a document record and, best effort, its folder.
//
// @Summary      Delete an other document
// @Tags         others
// @Produce      json
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /other/{id} [delete]
func (h *OtherDocumentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.RecordsDeletedTotal.WithLabelValues(metrics.EntityOther).Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: `Archivo "Otro" eliminado exitosamente`})
}
