package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"theater-booking/internal/data/repository"
	"theater-booking/pkg/utils"

	"go.uber.org/zap"
)

// writeServiceError maps service errors onto HTTP responses. Sentinel
// errors from the repository layer carry the status; anything not
// recognized is a 500 with a generic body.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case errors.Is(err, repository.ErrConflict),
		errors.Is(err, repository.ErrRelationshipConflict):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid credentials"):
		log.Warn(operation+" failed - invalid credentials")
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
