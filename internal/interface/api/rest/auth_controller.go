package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"patient-manager-api/internal/application/ports"
	"patient-manager-api/internal/application/services"
	"patient-manager-api/internal/interface/api/rest/dto/auth"
)

type AuthController struct {
	logger      *zap.Logger
	authService ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	authService ports.Auth,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		authService: authService,
	}

	r.POST(RouteToken, ac.TokenHandler)

	return ac
}

func (ac *AuthController) TokenHandler(c *gin.Context) {
	var req auth.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	token, err := ac.authService.IssueToken(req.ClientID, req.ClientSecret)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid credentials"},
			)
			return
		}
		ac.logger.Error("IssueToken() error", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to issue token"},
		)
		return
	}

	c.JSON(http.StatusOK, auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	})
}
