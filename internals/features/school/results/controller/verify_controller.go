// file: internals/features/school/results/controller/verify_controller.go
package controller

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "sekolahku_backend/internals/helpers"
)

// VerifyByToken is the only unauthenticated endpoint of the engine: anyone
// holding a printed token may check a result's authenticity.
func (ctl *ResultController) VerifyByToken(c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Params("token"))
	if token == "" {
		return helper.Error(c, http.StatusNotFound, "invalid or expired verification token")
	}
	view, err := ctl.Service.VerifyByToken(c.UserContext(), token)
	if err != nil {
		return writeAppError(c, err)
	}
	return helper.Success(c, "OK", view)
}
