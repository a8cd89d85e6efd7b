package get_catalog

import (
	"net/http"

	"github.com/universalyoga/UYS-SyncService/internal/api/handlers"
)

type Handler struct {
	service FreshnessService
	logger  Logger
}

func NewHandler(service FreshnessService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog
// Всегда отвечает 200: при недоступности удаленного хранилища отдается
// кешированный снимок либо пустой каталог с пометкой источника
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.FetchWithFreshness(r.Context())

	h.logger.Info("GET /catalog - %d items, source=%s, fresh=%t",
		len(result.Items), result.Source, result.IsFresh)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResult(result))
}
