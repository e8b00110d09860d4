package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/fabianhinz/rkicasesdashboard-sub000/logmodule"
	"github.com/fabianhinz/rkicasesdashboard-sub000/state"
	"github.com/fabianhinz/rkicasesdashboard-sub000/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// dashboard state
	dashboard state.Dashboard

	// preference database, nil when preferences are kept in memory
	pinger store.Pinger
}

// NewServer new instance of server
func NewServer(dashboard state.Dashboard, pinger store.Pinger) *Server {
	return &Server{
		dashboard: dashboard,
		pinger:    pinger,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "PUT", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	apiRoute.GET("/information", s.information)

	{
		apiRoute.GET("/regions", s.getRegions)
		apiRoute.GET("/days", s.getDays)
		apiRoute.GET("/summary", s.getSummary)
		apiRoute.GET("/rankings", s.getRankings)
		apiRoute.GET("/metrics", s.getMetrics)
	}

	preferenceRoute := apiRoute.Group("/preferences")
	{
		preferenceRoute.GET("", s.getPreferences)
		preferenceRoute.PUT("/regions", s.updateRegionFilter)
		preferenceRoute.POST("/metrics/:metric/toggle", s.toggleMetric)
		preferenceRoute.PUT("/display", s.updateDisplaySettings)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	if s.pinger != nil {
		err := s.pinger.Ping()
		if shouldInterupt(err, c) {
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	v := s.dashboard.View()

	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"regions":        len(v.Regions),
			"last_update":    v.Summary.LastUpdate,
			"updated_at":     v.UpdatedAt,
			"system_version": "RKI Cases Dashboard 0.1",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
