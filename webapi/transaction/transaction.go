// Package transaction exposes the transfer endpoint of the web API.
package transaction

import (
	"log/slog"

	"github.com/amirasaad/transfers/pkg/domain/account"
	"github.com/amirasaad/transfers/pkg/money"
	"github.com/amirasaad/transfers/pkg/service/transfer"
	"github.com/amirasaad/transfers/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the transfer route.
//
// Routes:
//   - POST /v1/transactions : Transfer funds between two accounts.
func Routes(app *fiber.App, svc *transfer.Service, logger *slog.Logger) {
	app.Post("/v1/transactions", TransferMoney(svc, logger))
}

// TransferMoney returns a handler that performs a fund transfer. A
// completed transfer is acknowledged with 202 Accepted; validation
// failures map to client errors and guard contention to 503.
// @Summary Transfer funds between accounts
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body TransferRequest true "Transfer details"
// @Success 202 {object} common.Response "Transfer accepted"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 422 {object} common.ProblemDetails "Insufficient balance"
// @Failure 503 {object} common.ProblemDetails "Server busy"
// @Router /v1/transactions [post]
func TransferMoney(svc *transfer.Service, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransferRequest](c)
		if input == nil {
			return err // error response already written
		}
		currencyCode := money.DefaultCode
		if input.Currency != "" {
			currencyCode = money.Code(input.Currency)
		}
		amount, err := money.New(input.Amount, currencyCode)
		if err != nil {
			logger.Warn("invalid transfer amount", "amount", input.Amount, "error", err)
			return common.ErrorResponseJSON(
				c, common.ErrorToStatusCode(err), "Invalid amount", err.Error())
		}

		t := account.Transfer{
			FromAccountID: input.AccountFromID,
			ToAccountID:   input.AccountToID,
			Amount:        amount,
		}
		logger.Info("about to perform transfer",
			"from", t.FromAccountID, "to", t.ToAccountID, "amount", amount.String())
		if err := svc.TransferMoney(c.UserContext(), t); err != nil {
			return common.ErrorResponseJSON(
				c, common.ErrorToStatusCode(err), "Transfer failed", err.Error())
		}
		return common.SuccessResponseJSON(c, fiber.StatusAccepted, "Transfer accepted", nil)
	}
}
