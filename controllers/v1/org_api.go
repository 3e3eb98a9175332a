package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hr-attendance-backend/controllers"
	orghandler "hr-attendance-backend/lib/org"
	"hr-attendance-backend/middleware"
	apimodels "hr-attendance-backend/models/api"
	orgapimodels "hr-attendance-backend/models/api/org"
)

type orgApiController struct {
	controllers.BaseAPIController
}

func InitOrgApiRouters(app *fiber.App) {
	controller := orgApiController{}
	app.Route("org", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.getOrg)

		router.Route("settings", func(settingsRoute fiber.Router) {
			settingsRoute.Use(middleware.OrgAdminRequired())
			settingsRoute.Get("list", controller.listSettings)
			settingsRoute.Put(":code", controller.updateSetting)
		})

		router.Route("holidays", func(holidaysRoute fiber.Router) {
			holidaysRoute.Get("list", controller.listHolidays)
			holidaysRoute.Use(middleware.OrgAdminRequired())
			holidaysRoute.Post("", controller.addHoliday)
			holidaysRoute.Delete(":id", controller.deleteHoliday)
		})

		router.Use(middleware.OrgAdminRequired()).Put("app-config", controller.updateAppConfig)
	})
}

// @Summary Данные организации
// @Tags Организация
// @Description Данные организации
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=orgapimodels.OrganizationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org [get]
func (c *orgApiController) getOrg(ctx *fiber.Ctx) error {
	resp, err := orghandler.Instance.GetByID(middleware.GetUserOrg(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения данных организации")
	}
	if resp == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("Организация не найдена"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список настроек
// @Tags Организация
// @Description Список настроек организации
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]orgapimodels.OrgSettingView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org/settings/list [get]
func (c *orgApiController) listSettings(ctx *fiber.Ctx) error {
	list, err := orghandler.Instance.ListSettings(middleware.GetUserOrg(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка настроек")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Обновить значение настройки
// @Tags Организация
// @Description Обновить значение настройки организации
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	code 				path 		string  true 	"org setting code"
// @Param	body				body		orgapimodels.UpdateOrgSettingValue	true	"request body"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org/settings/{code} [put]
func (c *orgApiController) updateSetting(ctx *fiber.Ctx) error {
	settingCode, err := c.GetIDByKey(ctx, "code")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload orgapimodels.UpdateOrgSettingValue
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = orghandler.Instance.UpdateSetting(middleware.GetUserOrg(ctx), settingCode, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления настройки")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(nil))
}

// @Summary Список праздников
// @Tags Организация
// @Description Список праздничных дней организации
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]orgapimodels.HolidayView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org/holidays/list [get]
func (c *orgApiController) listHolidays(ctx *fiber.Ctx) error {
	list, err := orghandler.Instance.ListHolidays(middleware.GetUserOrg(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка праздников")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Добавить праздник
// @Tags Организация
// @Description Добавить праздничный день
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		orgapimodels.AddHolidayRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org/holidays [post]
func (c *orgApiController) addHoliday(ctx *fiber.Ctx) error {
	var payload orgapimodels.AddHolidayRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := orghandler.Instance.AddHoliday(middleware.GetUserOrg(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления праздника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Удалить праздник
// @Tags Организация
// @Description Удалить праздничный день
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true    "ID праздника"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org/holidays/{id} [delete]
func (c *orgApiController) deleteHoliday(ctx *fiber.Ctx) error {
	id, err := c.GetIDByKey(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = orghandler.Instance.DeleteHoliday(middleware.GetUserOrg(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления праздника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Обновить конфигурацию приложения
// @Tags Организация
// @Description Параметры автоматической отметки отсутствия и таймзона
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		orgapimodels.UpdateAppConfigRequest	true	"request body"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org/app-config [put]
func (c *orgApiController) updateAppConfig(ctx *fiber.Ctx) error {
	var payload orgapimodels.UpdateAppConfigRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := orghandler.Instance.UpdateAppConfig(middleware.GetUserOrg(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления конфигурации")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(nil))
}
