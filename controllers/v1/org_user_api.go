package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hr-attendance-backend/controllers"
	orgusershandler "hr-attendance-backend/lib/org/users"
	"hr-attendance-backend/middleware"
	apimodels "hr-attendance-backend/models/api"
	orgapimodels "hr-attendance-backend/models/api/org"
)

type orgUserApiController struct {
	controllers.BaseAPIController
}

func InitOrgUserRouters(app *fiber.App) {
	controller := orgUserApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("list", controller.list)
		router.Use(middleware.OrgAdminRequired())
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
		})
	})
}

// @Summary Создать сотрудника
// @Tags Сотрудники
// @Description Создать сотрудника организации
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		orgapimodels.CreateOrgUserRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users [post]
func (c *orgUserApiController) create(ctx *fiber.Ctx) error {
	var payload orgapimodels.CreateOrgUserRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := orgusershandler.Instance.Create(middleware.GetUserOrg(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания сотрудника")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Данные сотрудника
// @Tags Сотрудники
// @Description Данные сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true    "ID сотрудника"
// @Success 200 {object} apimodels.Response{data=orgapimodels.OrgUserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [get]
func (c *orgUserApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetIDByKey(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := orgusershandler.Instance.GetByID(middleware.GetUserOrg(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения данных сотрудника")
	}
	if resp == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("Сотрудник не найден"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список сотрудников
// @Tags Сотрудники
// @Description Список сотрудников организации
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]orgapimodels.OrgUserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/list [get]
func (c *orgUserApiController) list(ctx *fiber.Ctx) error {
	list, err := orgusershandler.Instance.List(middleware.GetUserOrg(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка сотрудников")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Обновить сотрудника
// @Tags Сотрудники
// @Description Обновить данные сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true    "ID сотрудника"
// @Param	body				body		orgapimodels.UpdateOrgUserRequest	true	"request body"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [put]
func (c *orgUserApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetIDByKey(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload orgapimodels.UpdateOrgUserRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := orgusershandler.Instance.Update(middleware.GetUserOrg(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления сотрудника")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(nil))
}
