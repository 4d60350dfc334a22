package restserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/chrissnell/sundial/internal/log"
	"github.com/chrissnell/sundial/internal/planner"
	"github.com/chrissnell/sundial/pkg/config"
	"github.com/chrissnell/sundial/pkg/render"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Controller represents the REST server controller
type Controller struct {
	ctx        context.Context
	wg         *sync.WaitGroup
	restConfig config.RESTServerData
	Server     http.Server
	logger     *zap.SugaredLogger
	handlers   *Handlers
}

// NewController creates a new REST server controller
func NewController(ctx context.Context, wg *sync.WaitGroup, configProvider config.ConfigProvider, p *planner.Planner, logger *zap.SugaredLogger) (*Controller, error) {
	cfgData, err := configProvider.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %v", err)
	}

	ctrl := &Controller{
		ctx:        ctx,
		wg:         wg,
		restConfig: cfgData.REST,
		logger:     logger,
	}

	ctrl.handlers = NewHandlers(p, render.Options{
		Radius: cfgData.Render.Radius,
		Margin: cfgData.Render.Margin,
	}, logger)

	ctrl.Server = http.Server{
		Addr:         cfgData.REST.Addr(),
		Handler:      ctrl.Router(),
		ReadTimeout:  cfgData.REST.ReadTimeout,
		WriteTimeout: cfgData.REST.WriteTimeout,
	}

	return ctrl, nil
}

// StartController starts the REST server
func (c *Controller) StartController() error {
	log.Infof("Starting REST server on %s...", c.Server.Addr)
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		if c.restConfig.Cert != "" && c.restConfig.Key != "" {
			if err := c.Server.ListenAndServeTLS(c.restConfig.Cert, c.restConfig.Key); err != http.ErrServerClosed {
				log.Errorf("REST server error: %v", err)
			}
		} else {
			if err := c.Server.ListenAndServe(); err != http.ErrServerClosed {
				log.Errorf("REST server error: %v", err)
			}
		}
	}()

	go func() {
		<-c.ctx.Done()
		log.Info("Shutting down the REST server...")
		c.Server.Shutdown(context.Background())
	}()

	return nil
}

// Router returns the HTTP router with all endpoints
func (c *Controller) Router() *mux.Router {
	return newRouter(c.handlers)
}

func newRouter(h *Handlers) *mux.Router {
	router := mux.NewRouter()
	router.Use(log.HTTPMiddleware)

	router.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
	router.HandleFunc("/dial", h.GetDial).Methods(http.MethodGet)
	router.HandleFunc("/dial.png", h.GetDialImage).Methods(http.MethodGet)
	router.HandleFunc("/eot/{day:[0-9]+}", h.GetEquationOfTime).Methods(http.MethodGet)

	return router
}
