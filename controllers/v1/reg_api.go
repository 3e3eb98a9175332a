package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hr-attendance-backend/controllers"
	orghandler "hr-attendance-backend/lib/org"
	apimodels "hr-attendance-backend/models/api"
	orgapimodels "hr-attendance-backend/models/api/org"
)

type regApiController struct {
	controllers.BaseAPIController
}

func InitRegRouters(app *fiber.App) {
	controller := regApiController{}
	app.Route("reg", func(router fiber.Router) {
		router.Post("org", controller.createOrg)
	})
}

// @Summary Регистрация организации
// @Tags Регистрация
// @Description Регистрация организации с администратором, триал активируется автоматически
// @Param	body				body		orgapimodels.CreateOrgRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reg/org [post]
func (c *regApiController) createOrg(ctx *fiber.Ctx) error {
	var payload orgapimodels.CreateOrgRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := orghandler.Instance.Create(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка регистрации организации")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}
