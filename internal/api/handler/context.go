package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/viewmall/commerce-api/internal/core/domain"
)

// principalKey mirrors the context key set by the ResolvePrincipal
// middleware.
const principalKey = "principal"

// currentPrincipal returns the principal resolved for this request. When the
// middleware did not run, or resolution failed, the result is the anonymous
// principal; authorization is always decided by the service-level guards,
// never here.
func currentPrincipal(c echo.Context) domain.Principal {
	p, _ := c.Get(principalKey).(domain.Principal)
	return p
}
