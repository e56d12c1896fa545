package handlers

//go:generate mockgen -source=token.go -destination=token_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

// TokenIssuer defines the interface that the auth service must implement.
type TokenIssuer interface {
	IssueToken(ctx context.Context, username, password string) (string, error)
}

// NewTokenHandler returns an HTTP handler issuing access tokens.
// @Summary Issue token
// @Description Authenticates the user and returns a JWT carrying the user's role
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.TokenRequest true "Credentials"
// @Success 200 {object} models.TokenResponse "JWT token returned"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid username or password"
// @Router /token [post]
func NewTokenHandler(svc TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.TokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		token, err := svc.IssueToken(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				writeError(w, http.StatusUnauthorized, "Invalid username or password")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, models.TokenResponse{Token: token})
	}
}
