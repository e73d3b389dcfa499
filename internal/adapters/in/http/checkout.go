package http

import (
	"net/http"

	"github.com/bossnaboss212/dernier-occase/internal/core/application/usecases/commands"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/account"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/checkout"

	"github.com/labstack/echo/v4"
)

// SubmitCheckoutStepRequest is the body of POST /api/v1/checkout/input:
// the customer's raw answer to the current checkout question.
type SubmitCheckoutStepRequest struct {
	Input string `json:"input"`
}

// CheckoutStateDoc reports which answer the checkout conversation waits
// for next.
type CheckoutStateDoc struct {
	Step string `json:"step"`
}

// CommittedOrderDoc confirms a committed order back to the customer.
type CommittedOrderDoc struct {
	OrderID     string `json:"order_id"`
	Code        string `json:"code"`
	Subtotal    string `json:"subtotal"`
	Discount    string `json:"discount"`
	DeliveryFee string `json:"delivery_fee"`
	Total       string `json:"total"`
}

// StartCheckout handles POST /api/v1/checkout - opens the checkout
// conversation for the caller's cart. An abandoned conversation is
// replaced, never resumed.
func (s *Server) StartCheckout(ctx echo.Context) error {
	callerID, err := s.authorize(ctx, account.Customer)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewStartCheckoutCommand(callerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.StartCheckout.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CheckoutStateDoc{
		Step: string(checkout.StepAddress),
	})
}

// SubmitCheckoutStep handles POST /api/v1/checkout/input - feeds the
// customer's answer to the conversation. Mid-conversation answers get the
// next step back; the final answer commits the order and returns its
// confirmation.
func (s *Server) SubmitCheckoutStep(ctx echo.Context) error {
	callerID, err := s.authorize(ctx, account.Customer)
	if err != nil {
		return writeError(ctx, err)
	}

	var req SubmitCheckoutStepRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewSubmitCheckoutStepCommand(callerID, req.Input)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.handlers.SubmitCheckoutStep.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	if result.Committed == nil {
		return ctx.JSON(http.StatusOK, CheckoutStateDoc{
			Step: string(result.Step),
		})
	}

	return ctx.JSON(http.StatusCreated, CommittedOrderDoc{
		OrderID:     result.Committed.OrderID.String(),
		Code:        result.Committed.Code,
		Subtotal:    result.Committed.Subtotal.String(),
		Discount:    result.Committed.Discount.String(),
		DeliveryFee: result.Committed.DeliveryFee.String(),
		Total:       result.Committed.Total.String(),
	})
}
