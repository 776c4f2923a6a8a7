package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/calvacorro/legal-records-api/internal/api/metrics"
	"github.com/calvacorro/legal-records-api/internal/core/ports"
)

const caseFileRequiredMsg = "El campo '%s' es requerido."

// CaseFileHandler handles HTTP requests for case files ("expedientes").
type CaseFileHandler struct {
	service ports.CaseFileService
}

func NewCaseFileHandler(service ports.CaseFileService) *CaseFileHandler {
	return &CaseFileHandler{service: service}
}

// Create opens a case file for an active client and provisions its folder.
//
// @Summary      Create a case file
// @Tags         cases
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body      caseFileRequest  true  "Case file"
// @Success      201   {object}  caseFileCreatedResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /case [post]
func (h *CaseFileHandler) Create(c echo.Context) error {
	var req caseFileRequest
	if err := bindAndValidate(c, &req, caseFileRequiredMsg); err != nil {
		return err
	}

	cf, err := h.service.Create(c.Request().Context(), toCaseFileInput(req))
	if err != nil {
		return err
	}
	metrics.RecordsCreatedTotal.WithLabelValues(metrics.EntityCaseFile).Inc()

	return c.JSON(http.StatusCreated, caseFileCreatedResponse{
		Message:  "Expediente creado exitosamente.",
		ID:       cf.ID,
		DriveIDs: cf.DriveFolderID,
	})
}

// List returns every case file.
//
// @Summary      List case files
// @Tags         cases
// @Produce      json
// @Success      200  {array}   caseFileView
// @Failure      500  {object}  map[string]string
// @Router       /cases [get]
func (h *CaseFileHandler) List(c echo.Context) error {
	list, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]caseFileView, 0, len(list))
	for _, cf := range list {
		out = append(out, toCaseFileView(cf))
	}
	return c.JSON(http.StatusOK, out)
}

// ListByClient returns the id and title of each case file of a client.
//
// @Summary      List case files of a client
// @Tags         cases
// @Produce      json
// @Param        clientId  path      string  true  "Client ID"
// @Success      200       {array}   caseFileSummary
// @Failure      500       {object}  map[string]string
// @Router       /cases/client/{clientId} [get]
func (h *CaseFileHandler) ListByClient(c echo.Context) error {
	list, err := h.service.ListByClient(c.Request().Context(), c.Param("clientId"))
	if err != nil {
		return err
	}
	out := make([]caseFileSummary, 0, len(list))
	for _, cf := range list {
		out = append(out, caseFileSummary{ID: cf.ID, Title: cf.Title})
	}
	return c.JSON(http.StatusOK, out)
}

// ListDocuments lists the files stored in the case file's folder.
//
// @Summary      List case file documents
// @Tags         cases
// @Produce      json
// @Param        id   path      string  true  "Case file ID"
// @Success      200  {array}   storedFileView
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /case/{id}/documents [get]
func (h *CaseFileHandler) ListDocuments(c echo.Context) error {
	files, err := h.service.ListDocuments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStoredFileViews(files))
}

// Get returns one case file.
//
// @Summary      Get a case file
// @Tags         cases
// @Produce      json
// @Param        id   path      string  true  "Case file ID"
// @Success      200  {object}  caseFileView
// @Failure      404  {object}  map[string]string
// @Router       /case/{id} [get]
func (h *CaseFileHandler) Get(c echo.Context) error {
	cf, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCaseFileView(cf))
}

// Update overwrites a case file. The folder and creation time are kept.
//
// @Summary      Update a case file
// @Tags         cases
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        id    path      string           true  "Case file ID"
// @Param        body  body      caseFileRequest  true  "Case file with _method=PUT"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      405   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /case/{id} [post]
func (h *CaseFileHandler) Update(c echo.Context) error {
	var req caseFileRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := requirePutOverride(req.Method); err != nil {
		return err
	}
	if err := validate(c, &req, caseFileRequiredMsg); err != nil {
		return err
	}

	if _, err := h.service.Update(c.Request().Context(), c.Param("id"), toCaseFileInput(req)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Expediente actualizado correctamente."})
}

// Delete removes a case file and, best effort, its folder.
//
// @Summary      Delete a case file
// @Tags         cases
// @Produce      json
// @Param        id   path      string  true  "Case file ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /case/{id} [delete]
func (h *CaseFileHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.RecordsDeletedTotal.WithLabelValues(metrics.EntityCaseFile).Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Expediente eliminado exitosamente"})
}
