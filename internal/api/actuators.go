package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/qdm12/reprint"
)

func (s *Server) registerActuatorEndpoints(rest *echo.Echo) {
	group := rest.Group("/actuator")

	group.GET("/", s.getActuators)
	group.GET("/:"+urlParamId+"/", s.getActuator)
}

// returns the last published state of all actuators
func (s *Server) getActuators(c echo.Context) error {
	data := reprint.This(s.store.Actuators())
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func (s *Server) getActuator(c echo.Context) error {
	id := c.Param(urlParamId)
	data, exists := s.store.GetActuator(id)
	if !exists {
		return returnNotFound(c, id)
	}
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}
