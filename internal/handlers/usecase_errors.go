package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Expertman131/beauty-track-sub001/internal/httperr"
)

// Business error codes that mean "the requested thing does not exist"
// rather than "the request was malformed".
var notFoundCodes = map[string]bool{
	"staff_not_found":   true,
	"service_not_found": true,
	"booking_not_found": true,
	"branch_not_found":  true,
}

var conflictCodes = map[string]bool{
	"time_conflict": true,
	"invalid_state": true,
}

// writeUseCaseError maps a use-case error to an HTTP response. Business
// codes become 4xx with the code on the wire; anything else is a 500.
func writeUseCaseError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)
	switch {
	case code == "":
		httperr.Internal(c, "internal_error", "Unexpected error.")
	case notFoundCodes[code]:
		httperr.NotFound(c, code, code)
	case conflictCodes[code]:
		httperr.Conflict(c, code, code)
	default:
		httperr.BadRequest(c, code, code)
	}
}
