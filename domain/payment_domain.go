package domain

import (
	"errors"
)

var (
	MessageSuccessCreateIntent = "payment intent created successfully"

	MessageFailedCreateIntent = "failed to create payment intent"

	ErrAmountRequired = errors.New("amount is required and must be positive")
	ErrPaymentFailed  = errors.New("payment processing failed")
)

type (
	CreatePaymentIntentRequest struct {
		Amount  float64 `json:"amount" validate:"required,gt=0"`
		OrderID uint    `json:"order_id,omitempty"`
		Email   string  `json:"email,omitempty" validate:"omitempty,email"`
	}

	CreatePaymentIntentResponse struct {
		ClientToken string `json:"client_token"`
		RedirectURL string `json:"redirect_url"`
		Reference   string `json:"reference"`
	}
)
