package handlers

import (
	"log/slog"
	"sync"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/SscSPs/property_ledger/internal/utils"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by the query DTOs:
// isodate (YYYY-MM-DD), accounttype and currency (ISO 4217).
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			slog.Warn("Gin validator engine is not go-playground/validator; custom tags unavailable")
			return
		}
		must := func(tag string, fn validator.Func) {
			if err := v.RegisterValidation(tag, fn); err != nil {
				slog.Error("Failed to register validator", slog.String("tag", tag), slog.String("error", err.Error()))
			}
		}
		must("isodate", validateISODate)
		must("accounttype", validateAccountType)
		must("currency", validateCurrency)
	})
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := domain.ParseDate(fl.Field().String())
	return err == nil
}

func validateAccountType(fl validator.FieldLevel) bool {
	return domain.AccountType(fl.Field().String()).IsValid()
}

func validateCurrency(fl validator.FieldLevel) bool {
	return utils.IsKnownCurrency(fl.Field().String())
}
