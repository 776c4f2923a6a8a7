package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/calvacorro/legal-records-api/internal/api/metrics"
	"github.com/calvacorro/legal-records-api/internal/core/ports"
)

// ClientHandler handles HTTP requests for client operations.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// Create registers a new client.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body      clientRequest  true  "Client"
// @Success      201   {object}  clientMutationResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /cliente [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req clientRequest
	if err := bindAndValidate(c, &req, "El campo '%s' es obligatorio."); err != nil {
		return err
	}

	client, err := h.service.Create(c.Request().Context(), toClientInput(req))
	if err != nil {
		return err
	}
	metrics.RecordsCreatedTotal.WithLabelValues(metrics.EntityClient).Inc()

	return c.JSON(http.StatusCreated, clientMutationResponse{
		Message: "Cliente creado correctamente",
		ID:      client.ID,
		Data:    toClientView(client),
	})
}

// List returns every active client.
//
// @Summary      List active clients
// @Tags         clients
// @Produce      json
// @Success      200  {array}   clientView
// @Failure      500  {object}  map[string]string
// @Router       /clientes [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]clientView, 0, len(clients))
	for _, cl := range clients {
		out = append(out, toClientView(cl))
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns one active client.
//
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  clientView
// @Failure      404  {object}  map[string]string
// @Router       /cliente/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	client, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientView(client))
}

// Update replaces the client fields. Renaming may move the client to a new ID,
// which is returned in the response.
//
// @Summary      Update a client
// @Tags         clients
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        id    path      string         true  "Client ID"
// @Param        body  body      clientRequest  true  "Client with _method=PUT"
// @Success      200   {object}  clientMutationResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      405   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /cliente/{id} [post]
func (h *ClientHandler) Update(c echo.Context) error {
	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := requirePutOverride(req.Method); err != nil {
		return err
	}
	if err := validate(c, &req, "El campo '%s' es obligatorio para la actualización."); err != nil {
		return err
	}

	client, err := h.service.Update(c.Request().Context(), c.Param("id"), toClientInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, clientMutationResponse{
		Message: "Cliente actualizado correctamente",
		ID:      client.ID,
		Data:    toClientView(client),
	})
}

// Delete marks the client inactive.
//
// @Summary      Soft-delete a client
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /cliente/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.service.SoftDelete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.RecordsDeletedTotal.WithLabelValues(metrics.EntityClient).Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Cliente borrado (lógicamente) correctamente", ID: id})
}
