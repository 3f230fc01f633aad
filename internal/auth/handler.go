package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	sharedauth "resume-vault/internal/shared/auth"
	"resume-vault/internal/shared/server/respond"
	"resume-vault/internal/shared/telemetry"
)

// The only accepted credential pair. There is no user store behind login.
const (
	loginUsername = "naval.ravikant"
	loginPassword = "05111974"
)

// Handler serves the login route.
type Handler struct {
	Tokens *sharedauth.TokenService
}

// NewHandler constructs a Handler.
func NewHandler(tokens *sharedauth.TokenService) *Handler {
	return &Handler{Tokens: tokens}
}

// RegisterRoutes attaches auth routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.login)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	JWT string `json:"JWT"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if req.Username != loginUsername || req.Password != loginPassword {
		respond.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.Tokens.Sign(req.Username)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	telemetry.Info("auth.login", map[string]any{"username": req.Username})
	respond.OK(c, loginResponse{JWT: token})
}
