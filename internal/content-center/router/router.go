// Package router wires the content-center HTTP routes.
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kart-io/content-center/internal/content-center/handler"
	"github.com/kart-io/content-center/pkg/auth/tokenstore"
	"github.com/kart-io/content-center/pkg/middleware"
)

// Config carries everything the router needs to build the engine.
type Config struct {
	Mode           string
	RequestTimeout time.Duration

	Tokens tokenstore.Store

	Auth     *handler.AuthHandler
	Article  *handler.ArticleHandler
	Channel  *handler.ChannelHandler
	User     *handler.UserHandler
	Upload   *handler.UploadHandler
	StaticFS string
}

// New builds the gin engine with the full middleware chain and all routes.
//
// Authentication is enforced globally; the credential exchange, the upload
// endpoint, served upload files, and the health probe are the only
// unauthenticated surfaces.
func New(cfg *Config) *gin.Engine {
	gin.SetMode(cfg.Mode)

	engine := gin.New()
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.Timeout(cfg.RequestTimeout),
		middleware.Auth(
			middleware.AuthWithStore(cfg.Tokens),
			middleware.AuthWithSkipPaths("/authorizations", "/upload", "/healthz"),
			middleware.AuthWithSkipPathPrefixes("/uploads/"),
		),
	)

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	engine.POST("/authorizations", cfg.Auth.Login)
	engine.GET("/user/profile", cfg.User.Profile)
	engine.GET("/channels", cfg.Channel.List)

	mp := engine.Group("/mp")
	{
		mp.POST("/articles", cfg.Article.Create)
		mp.GET("/articles", cfg.Article.List)
		mp.GET("/articles/:id", cfg.Article.Get)
		mp.PUT("/articles/:id", cfg.Article.Update)
		mp.DELETE("/articles/:id", cfg.Article.Delete)
	}

	engine.POST("/upload", cfg.Upload.Upload)
	if cfg.StaticFS != "" {
		engine.Static("/uploads", cfg.StaticFS)
	}

	return engine
}
