package middleware

import (
	"github.com/gofiber/fiber/v2"

	authutils "hr-attendance-backend/lib/utils/auth-utils"
	"hr-attendance-backend/models"
	apimodels "hr-attendance-backend/models/api"
)

func GetUserOrg(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if org, exist := claims["org"]; exist {
		return org.(string)
	}
	return ""
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		return sub.(string)
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

func OrgAdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserRole(ctx) != models.OrgAdminRole {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}

// LeaveDeciderRequired решения по заявкам принимают админ, HR и руководители
func LeaveDeciderRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRole(ctx).CanDecideLeave() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}
