// app/echoServer/controller/auth/authController.go
package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Mohit-0987/Bike-Rental-System/model"
	authsvc "github.com/Mohit-0987/Bike-Rental-System/service/auth"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc authsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// bind decodes and validates the request body, answering 400 itself.
func (ct *Controller) bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := ct.V.Struct(req); err != nil {
		ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "validation error")
	}
	return nil
}

// Register a new customer
// @Summary      Register customer
// @Description  Register a new customer with a unique email, returns the customer and a JWT
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        payload  body  model.RegisterReq  true  "Register payload"
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      409  {object}  map[string]any "email already registered"
// @Failure      500  {object}  map[string]any "internal server error"
// @Router       /v1/customers/register [post]
func (ct *Controller) Register(c echo.Context) error {
	var req model.RegisterReq
	if err := ct.bind(c, &req); err != nil {
		return err
	}

	cu, token, err := ct.Svc.Register(c.Request().Context(), req)
	switch {
	case err == nil:
	case errors.Is(err, authsvc.ErrEmailTaken):
		return echo.NewHTTPError(http.StatusConflict, "email already registered")
	case errors.Is(err, authsvc.ErrBadInput):
		return echo.NewHTTPError(http.StatusBadRequest, "bad input")
	default:
		ct.Log.Error("register failed",
			"err", err,
			"req_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"path", c.Path(),
		)
		return echo.NewHTTPError(http.StatusInternalServerError, "register failed")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "registered",
		"customer": cu,
		"token":    token,
	})
}

// Login
// @Summary      Login
// @Description  Login with a registered email, returns JWT
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        payload  body  model.LoginReq  true  "Login payload"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /v1/customers/login [post]
func (ct *Controller) Login(c echo.Context) error {
	var req model.LoginReq
	if err := ct.bind(c, &req); err != nil {
		return err
	}

	cu, token, err := ct.Svc.Login(c.Request().Context(), req)
	switch {
	case err == nil:
	case errors.Is(err, authsvc.ErrCustomerNotFound):
		return echo.NewHTTPError(http.StatusUnauthorized, "unknown email")
	case errors.Is(err, authsvc.ErrBadInput):
		return echo.NewHTTPError(http.StatusBadRequest, "bad input")
	default:
		ct.Log.Error("login failed",
			"err", err,
			"req_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"path", c.Path(),
		)
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":  "login success",
		"customer": cu,
		"token":    token,
	})
}
