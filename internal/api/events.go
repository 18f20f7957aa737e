package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/plant2go/internal/events"
)

func (s *Server) registerEventEndpoints(rest *echo.Echo) {
	group := rest.Group("/event")

	group.GET("/", s.getEvents)
}

// returns all recorded events, optionally filtered by kind
func (s *Server) getEvents(c echo.Context) error {
	entries := s.log.Entries()

	kind := c.QueryParam(queryParamKind)
	if len(kind) <= 0 {
		return c.JSONPretty(http.StatusOK, entries, indentationChar)
	}
	if !events.IsKnownKind(events.Kind(kind)) {
		return returnBadRequest(c, fmt.Errorf("unknown event kind: %s", kind))
	}

	result := []events.Record{}
	for _, entry := range entries {
		if entry.Kind == events.Kind(kind) {
			result = append(result, entry)
		}
	}
	return c.JSONPretty(http.StatusOK, result, indentationChar)
}
