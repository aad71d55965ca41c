package payment

import (
	"canteen-queue-optimizer/domain"
	"canteen-queue-optimizer/internal/utils"
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type (
	// PaymentService creates the client-side handshake token with the
	// external processor. Nothing about the payment lifecycle is stored
	// here.
	PaymentService interface {
		CreatePaymentIntent(ctx context.Context, req domain.CreatePaymentIntentRequest) (domain.CreatePaymentIntentResponse, error)
	}

	paymentService struct {
		client snap.Client
	}
)

func NewPaymentService() PaymentService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(utils.GetConfig("SERVER_KEY"), env)

	return &paymentService{client: client}
}

func (s *paymentService) CreatePaymentIntent(ctx context.Context, req domain.CreatePaymentIntentRequest) (domain.CreatePaymentIntentResponse, error) {
	if req.Amount <= 0 {
		return domain.CreatePaymentIntentResponse{}, domain.ErrAmountRequired
	}

	reference := fmt.Sprintf("canteen-%s", uuid.New().String())
	if req.OrderID != 0 {
		reference = fmt.Sprintf("canteen-order-%d-%s", req.OrderID, uuid.New().String())
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  reference,
			GrossAmt: int64(req.Amount * 100),
		},
	}
	if req.Email != "" {
		snapReq.CustomerDetail = &midtrans.CustomerDetails{
			Email: req.Email,
		}
	}

	resp, err := s.client.CreateTransaction(snapReq)
	if err != nil {
		log.Printf("midtrans transaction failed for %s: %v", reference, err)
		return domain.CreatePaymentIntentResponse{}, domain.ErrPaymentFailed
	}

	return domain.CreatePaymentIntentResponse{
		ClientToken: resp.Token,
		RedirectURL: resp.RedirectURL,
		Reference:   reference,
	}, nil
}
