package apiv1

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"hr-attendance-backend/controllers"
	leavehandler "hr-attendance-backend/lib/leave"
	"hr-attendance-backend/middleware"
	apimodels "hr-attendance-backend/models/api"
	leaveapimodels "hr-attendance-backend/models/api/leave"
)

type leaveApiController struct {
	controllers.BaseAPIController
}

func InitLeaveApiRouters(app *fiber.App) {
	controller := leaveApiController{}
	app.Route("leave", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Get("confirmation", controller.confirmation)
			idRoute.Use(middleware.LeaveDeciderRequired()).Put("status", controller.setStatus)
		})
	})
}

// @Summary Создать заявку на отпуск
// @Tags Отпуска
// @Description Создать заявку на отпуск от имени текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		leaveapimodels.CreateLeaveRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave [post]
func (c *leaveApiController) create(ctx *fiber.Ctx) error {
	var payload leaveapimodels.CreateLeaveRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := leavehandler.Instance.Create(middleware.GetUserOrg(ctx), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания заявки на отпуск")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список заявок на отпуск
// @Tags Отпуска
// @Description Список заявок на отпуск с фильтром
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		leaveapimodels.LeaveListFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]leaveapimodels.LeaveRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave/list [post]
func (c *leaveApiController) list(ctx *fiber.Ctx) error {
	var payload leaveapimodels.LeaveListFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := leavehandler.Instance.List(middleware.GetUserOrg(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заявок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Данные заявки на отпуск
// @Tags Отпуска
// @Description Данные заявки на отпуск
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true    "ID заявки"
// @Success 200 {object} apimodels.Response{data=leaveapimodels.LeaveRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave/{id} [get]
func (c *leaveApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetIDByKey(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := leavehandler.Instance.Get(middleware.GetUserOrg(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заявки")
	}
	if resp == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("Заявка не найдена"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Сменить статус заявки
// @Tags Отпуска
// @Description Перевод заявки по цепочке согласования
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true    "ID заявки"
// @Param	body				body		leaveapimodels.SetLeaveStatusRequest	true	"request body"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave/{id}/status [put]
func (c *leaveApiController) setStatus(ctx *fiber.Ctx) error {
	id, err := c.GetIDByKey(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload leaveapimodels.SetLeaveStatusRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := leavehandler.Instance.SetStatus(middleware.GetUserOrg(ctx), id, middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка смены статуса заявки")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(nil))
}

// @Summary Подтверждение отпуска в pdf
// @Tags Отпуска
// @Description Скачать pdf-подтверждение одобренного отпуска
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true    "ID заявки"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave/{id}/confirmation [get]
func (c *leaveApiController) confirmation(ctx *fiber.Ctx) error {
	id, err := c.GetIDByKey(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	pdfFile, hMsg, err := leavehandler.Instance.Confirmation(middleware.GetUserOrg(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка генерации подтверждения")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	fileName := fmt.Sprintf("leave-%v.pdf", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(bytes.NewReader(pdfFile))
}
