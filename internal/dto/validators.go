package dto

import (
	"github.com/chaikhata/shop_ledger_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators installs the binding rules the DTO tags rely on.
// Called once from main before the router starts serving.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("paymentmethod", validPaymentMethod)
	}
}

func validPaymentMethod(fl validator.FieldLevel) bool {
	return domain.ValidPaymentMethod(domain.PaymentMethod(fl.Field().String()))
}
