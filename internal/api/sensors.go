package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/qdm12/reprint"
)

func (s *Server) registerSensorEndpoints(rest *echo.Echo) {
	group := rest.Group("/sensor")

	group.GET("/", s.getSensors)
	group.GET("/:"+urlParamId+"/", s.getSensor)
}

// returns the last published state of all sensors
func (s *Server) getSensors(c echo.Context) error {
	data := reprint.This(s.store.Sensors())
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func (s *Server) getSensor(c echo.Context) error {
	id := c.Param(urlParamId)

	data, exists := s.store.GetSensor(id)
	if !exists {
		return returnNotFound(c, id)
	} else {
		return c.JSONPretty(http.StatusOK, data, indentationChar)
	}
}
