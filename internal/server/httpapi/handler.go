package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/passvault/internal/common"
)

type signupRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	SecretKey string `json:"secretKey"`
}

type loginRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	SecretKey string `json:"secretKey"`
}

type saveItemRequest struct {
	UserID   string `json:"userId"`
	SiteName string `json:"siteName"`
	Link     string `json:"link"`
	Password string `json:"password"`
}

type itemResponse struct {
	ID        string    `json:"id"`
	SiteName  string    `json:"siteName"`
	Link      string    `json:"link"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

// writeError maps the service error taxonomy to HTTP statuses and a stable
// {"error": ...} body. Anything outside the taxonomy is reported as a
// storage error without leaking internals.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": common.ErrorValidation.Error()})
	case errors.Is(err, common.ErrorDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": common.ErrorDuplicateEmail.Error()})
	case errors.Is(err, common.ErrorInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": common.ErrorInvalidCredentials.Error()})
	case errors.Is(err, common.ErrorUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": common.ErrorUserNotFound.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": common.ErrorStorage.Error()})
	}
}

func (s *HTTPServer) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (s *HTTPServer) signup(c *gin.Context) {
	ctx := c.Request.Context()

	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, common.ErrorValidation)
		return
	}

	userID, err := s.auth.Signup(ctx, req.Name, req.Email, req.Password, req.SecretKey)
	if err != nil {
		writeError(c, err)
		return
	}

	s.logger.Info(ctx, "user signed up", "user_id", userID)
	c.JSON(http.StatusOK, gin.H{"message": "User created", "userId": userID})
}

func (s *HTTPServer) login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, common.ErrorValidation)
		return
	}

	userID, err := s.auth.Login(ctx, req.Email, req.Password, req.SecretKey)
	if err != nil {
		writeError(c, err)
		return
	}

	s.logger.Info(ctx, "user logged in", "user_id", userID)
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "userId": userID})
}

func (s *HTTPServer) saveItem(c *gin.Context) {
	ctx := c.Request.Context()

	var req saveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, common.ErrorValidation)
		return
	}

	if err := s.vault.Save(ctx, req.UserID, req.SiteName, req.Link, req.Password); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vault item saved"})
}

func (s *HTTPServer) listItems(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := s.vault.List(ctx, c.Param("userId"))
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]itemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, itemResponse{
			ID:        item.ID,
			SiteName:  item.SiteName,
			Link:      item.Link,
			Password:  item.Password,
			CreatedAt: item.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) deleteItem(c *gin.Context) {
	ctx := c.Request.Context()

	if err := s.vault.Delete(ctx, c.Param("userId"), c.Param("itemId")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
