package http

import (
	"net/http"

	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/internal/service"
	"github.com/bachelormess/mess-manager/internal/utils"
	"github.com/bachelormess/mess-manager/internal/validators"
	"github.com/bachelormess/mess-manager/models"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewRequestValidator(),
		logger:    logger,
	}
}

// writeMessage writes the generic MessageResponse body with the given
// status. Success mirrors whether the status is below 400.
func writeMessage(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.MessageResponse{Message: message, Success: status < http.StatusBadRequest}, status)
}
