package handlers

import (
	"sync"

	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the "direction" and "rhythm" tags used by the request DTOs.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("direction", func(fl validator.FieldLevel) bool {
			return domain.Direction(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("rhythm", func(fl validator.FieldLevel) bool {
			return domain.Rhythm(fl.Field().String()).Valid()
		})
	})
}
