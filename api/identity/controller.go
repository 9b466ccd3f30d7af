package identity

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/vinom-posemaze/service"
	"github.com/beka-birhanu/vinom-posemaze/service/i"
	"github.com/gin-gonic/gin"
)

// IdentityServer handles HTTP requests related to operator authentication.
type IdentityServer struct {
	authService i.Authenticator
}

// NewIdentityServer creates a new IdentityServer.
func NewIdentityServer(a i.Authenticator) *IdentityServer {
	return &IdentityServer{
		authService: a,
	}
}

// RegisterPublic registers public routes.
func (c *IdentityServer) RegisterPublic(route *gin.RouterGroup) {
	auth := route.Group("/auth")
	{
		auth.POST("/token", c.token)
	}
}

// RegisterProtected registers privileged routes.
func (c *IdentityServer) RegisterProtected(route *gin.RouterGroup) {
}

// token exchanges the operator key for a token.
func (c *IdentityServer) token(ctx *gin.Context) {
	var request TokenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := c.authService.SignIn(request.Key)
	switch {
	case errors.Is(err, service.ErrOperatorLoginDisabled):
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	case err != nil:
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid operator key"})
		return
	}

	ctx.JSON(http.StatusOK, &TokenResponse{Token: token})
}
