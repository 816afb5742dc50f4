package httpapi

import (
	"github.com/gin-gonic/gin"
)

func (s *HTTPServer) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/ping", s.ping)
		api.POST("/signup", s.signup)
		api.POST("/login", s.login)
		api.POST("/vault", s.saveItem)
		api.GET("/vault/:userId", s.listItems)
		api.DELETE("/vault/:userId/:itemId", s.deleteItem)
	}

	return r
}
