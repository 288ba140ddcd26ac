package api

import (
	"github.com/beka-birhanu/mazegen/api/i"
	"github.com/gin-gonic/gin"
)

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []i.Controller
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []i.Controller
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
	}
}

// Engine builds the gin engine with every controller's routes mounted
// under <baseURL>/v1.
func (r *Router) Engine() *gin.Engine {
	router := gin.Default()

	api := router.Group(r.baseURL)
	{
		v1 := api.Group("/v1")
		for _, c := range r.controllers {
			c.Register(v1)
		}
	}

	return router
}

// Run starts the HTTP server.
func (r *Router) Run() error {
	gin.ForceConsoleColor()
	return r.Engine().Run(r.addr)
}
