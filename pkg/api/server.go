package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"

	"github.com/viktree/ttc-tracker/pkg/distancematrix"
	"github.com/viktree/ttc-tracker/pkg/nextbus"
	"github.com/viktree/ttc-tracker/pkg/ttc"
)

const Version = "1.0.1"

// Server exposes the route & distance lookups over HTTP.
type Server struct {
	routes   *nextbus.Client
	distance *distancematrix.Client
}

func NewServer(routes *nextbus.Client, distance *distancematrix.Client) *Server {
	return &Server{
		routes:   routes,
		distance: distance,
	}
}

func (s *Server) SetupApp() *fiber.App {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("/version", apiVersion)
	group.Get("/routes/:number", s.getRoute)
	group.Get("/distance", s.getDistance)

	return webApp
}

func (s *Server) Listen(listen string) error {
	return s.SetupApp().Listen(listen)
}

func apiVersion(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"version": Version,
	})
}

func (s *Server) getRoute(c *fiber.Ctx) error {
	number, err := strconv.Atoi(c.Params("number"))
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter number should be an integer",
		})
	}

	route, err := s.routes.Route(c.Context(), number)

	var notFound nextbus.RouteNotFoundError
	if errors.As(err, &notFound) {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": notFound.Error(),
		})
	} else if err != nil {
		c.SendStatus(fiber.StatusBadGateway)
		return c.JSON(fiber.Map{
			"error": "Could not retrieve the route from the feed",
		})
	}

	groups := []string{"basic"}
	if c.QueryBool("detailed") {
		groups = append(groups, "detailed")
	}

	routeReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, route)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce Route",
		})
	}

	return c.JSON(routeReduced)
}

func (s *Server) getDistance(c *fiber.Ctx) error {
	origin, err := ttc.ParseLocation(c.Query("origin"))
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter origin should be a lat,lon pair",
		})
	}

	destination, err := ttc.ParseLocation(c.Query("destination"))
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter destination should be a lat,lon pair",
		})
	}

	result, err := s.distance.Lookup(c.Context(), origin, destination)
	if err != nil {
		c.SendStatus(fiber.StatusBadGateway)
		return c.JSON(fiber.Map{
			"error": "Could not retrieve the distance from the Distance Matrix API",
		})
	}

	return c.JSON(result)
}
