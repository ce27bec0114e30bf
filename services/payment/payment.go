package payment

import (
	"context"
	"fmt"
	"time"

	"lexhub/models"
	"lexhub/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler charges consultation fees and issues invoices.
type PaymentHandler interface {
	// ProcessPayment charges the request amount and returns the invoice.
	// Card charges settle immediately; cash leaves the invoice pending.
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// StripePaymentHandler charges cards through Stripe and records cash
// payments as pending invoices.
type StripePaymentHandler struct{}

// NewStripePaymentHandler creates the production PaymentHandler. The
// Stripe API key is set globally at startup.
func NewStripePaymentHandler() *StripePaymentHandler {
	return &StripePaymentHandler{}
}

func (h *StripePaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("invalid payment amount %.2f", req.Amount)
	}

	now := time.Now()
	invoice := &models.Invoice{
		InvoiceID: uuid.New().String(),
		UserID:    req.UserID,
		LawyerID:  req.Metadata["lawyerId"],
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch req.Method {
	case "cash":
		// Settled in person; the booking proceeds on a pending invoice.
		invoice.Status = "pending"
		return invoice, nil
	case "card":
		params := &stripe.PaymentIntentParams{
			Amount:   stripe.Int64(int64(req.Amount * 100)),
			Currency: stripe.String(req.Currency),
			AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
				Enabled: stripe.Bool(true),
			},
			Description: stripe.String(req.Description),
		}
		params.Context = ctx
		for k, v := range req.Metadata {
			params.AddMetadata(k, v)
		}

		intent, err := paymentintent.New(params)
		if err != nil {
			invoice.Status = "failed"
			invoice.Error = err.Error()
			return nil, fmt.Errorf("stripe charge failed: %w", err)
		}

		utils.GetLogger().Info("Payment intent created",
			zap.String("paymentID", intent.ID),
			zap.Float64("amount", req.Amount))

		invoice.Status = "paid"
		invoice.PaymentID = intent.ID
		return invoice, nil
	default:
		return nil, fmt.Errorf("unsupported payment method %q", req.Method)
	}
}
