// Package account exposes the account endpoints of the web API.
package account

import (
	"log/slog"

	domainaccount "github.com/amirasaad/transfers/pkg/domain/account"
	"github.com/amirasaad/transfers/pkg/service/transfer"
	"github.com/amirasaad/transfers/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers HTTP routes for account operations.
//
// Routes:
//   - POST /account             : Create a new account.
//   - GET  /account/:id/balance : Retrieve the balance of the account.
func Routes(app *fiber.App, svc *transfer.Service, logger *slog.Logger) {
	app.Post("/account", CreateAccount(svc, logger))
	app.Get("/account/:id/balance", GetBalance(svc, logger))
}

// CreateAccount returns a handler that creates a new account, optionally
// with a caller-supplied id, currency and opening balance.
// @Summary Create a new account
// @Tags accounts
// @Accept json
// @Produce json
// @Success 201 {object} common.Response "Account created successfully"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 409 {object} common.ProblemDetails "Account id already taken"
// @Router /account [post]
func CreateAccount(svc *transfer.Service, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err // error response already written
		}
		a, err := svc.CreateAccount(c.UserContext(), input.ID, input.Currency, input.Balance)
		if err != nil {
			logger.Error("failed to create account", "error", err)
			return common.ErrorResponseJSON(
				c, common.ErrorToStatusCode(err), "Failed to create account", err.Error())
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", toAccountDTO(a))
	}
}

// GetBalance returns a handler that reads the account balance under its
// balance guard.
// @Summary Get account balance
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} common.Response "Balance retrieved"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 503 {object} common.ProblemDetails "Server busy"
// @Router /account/{id}/balance [get]
func GetBalance(svc *transfer.Service, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID := c.Params("id")
		bal, err := svc.Balance(c.UserContext(), accountID)
		if err != nil {
			logger.Error("failed to get balance", "account_id", accountID, "error", err)
			return common.ErrorResponseJSON(
				c, common.ErrorToStatusCode(err), "Failed to get balance", err.Error())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Balance retrieved", BalanceDTO{
			AccountID: accountID,
			Balance:   bal.AmountFloat(),
			Currency:  bal.CurrencyCode().String(),
		})
	}
}

func toAccountDTO(a *domainaccount.Account) AccountDTO {
	return AccountDTO{
		ID:       a.ID,
		Balance:  a.Balance.AmountFloat(),
		Currency: a.Balance.CurrencyCode().String(),
	}
}
