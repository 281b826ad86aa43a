package wire

import (
	"event-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// GET /api/v2/events/web - Event details proxied from the CMS (public)
	r.Get("/api/v2/events/web", catalogHandler.GetEvent)

	// GET /api/v2/packages - List booking packages (public)
	r.Get("/api/v2/packages", catalogHandler.GetPackages)

	// GET /api/v2/tables - List VIP tables with availability (public)
	r.Get("/api/v2/tables", catalogHandler.GetTables)
}
