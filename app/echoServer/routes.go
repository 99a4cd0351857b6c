package echoServer

import (
	"net/http"

	"github.com/Mohit-0987/Bike-Rental-System/app/echoServer/controller/auth"
	"github.com/Mohit-0987/Bike-Rental-System/app/echoServer/controller/bike"
	"github.com/Mohit-0987/Bike-Rental-System/app/echoServer/controller/rental"
	"github.com/Mohit-0987/Bike-Rental-System/app/echoServer/controller/report"
	"github.com/Mohit-0987/Bike-Rental-System/app/echoServer/jwtx"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Auth      *auth.Controller
	Bike      *bike.Controller
	Rental    *rental.Controller
	Report    *report.Controller
	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/customers/register", c.Auth.Register)
	pub.POST("/customers/login", c.Auth.Login)

	// Auth
	authed := e.Group("/v1")
	authed.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(c.JWTSecret),

		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization",
	}))
	// customer_id + role extraction
	authed.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			reqID := ctx.Response().Header().Get(echo.HeaderXRequestID)

			customerID, err := jwtx.CustomerIDFromContext(ctx)
			if err != nil {
				ctx.Logger().Warnf("[AUTH] %v req_id=%s ip=%s", err, reqID, ctx.RealIP())
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			ctx.Set("customer_id", customerID)

			if role, err := jwtx.RoleFromContext(ctx); err == nil {
				ctx.Set("role", role)
			}
			return next(ctx)
		}
	})

	// Fleet
	authed.GET("/bikes", c.Bike.List)
	authed.GET("/bikes/:id", c.Bike.Detail)
	// Admin endpoints
	authed.POST("/bikes", c.Bike.Create)

	// Rentals
	authed.POST("/rentals", c.Rental.Open)
	authed.POST("/rentals/:id/return", c.Rental.Return)
	authed.GET("/rentals/my", c.Rental.MyHistory)

	// Reports
	authed.GET("/reports/business", c.Report.Business)
}
