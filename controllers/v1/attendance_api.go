package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"hr-attendance-backend/controllers"
	attendancehandler "hr-attendance-backend/lib/attendance"
	"hr-attendance-backend/middleware"
	apimodels "hr-attendance-backend/models/api"
	attendanceapimodels "hr-attendance-backend/models/api/attendance"
)

type attendanceApiController struct {
	controllers.BaseAPIController
}

func InitAttendanceApiRouters(app *fiber.App) {
	controller := attendanceApiController{}
	app.Route("attendance", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("check-in", controller.checkIn)
		router.Post("check-out", controller.checkOut)
		router.Post("list", controller.list)
		router.Use(middleware.OrgAdminRequired()).Post("report", controller.report)
		router.Get(":id/selfie", controller.selfie)
	})
}

// @Summary Отметка о приходе
// @Tags Посещаемость
// @Description Отметка о приходе, селфи опционально (multipart поле selfie)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   location			formData	string	false	"название геозоны"
// @Param   selfie				formData	file	false	"селфи сотрудника"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/check-in [post]
func (c *attendanceApiController) checkIn(ctx *fiber.Ctx) error {
	payload := attendanceapimodels.CheckInRequest{
		Location: ctx.FormValue("location"),
	}
	orgID := middleware.GetUserOrg(ctx)
	userID := middleware.GetUserID(ctx)

	var hMsg string
	file, err := ctx.FormFile("selfie")
	if err == nil && file != nil {
		buffer, err := file.Open()
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		defer buffer.Close()
		hMsg, err = attendancehandler.Instance.CheckIn(ctx.UserContext(), orgID, userID, payload, buffer, file.Size)
		if err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отметки о приходе")
		}
	} else {
		hMsg, err = attendancehandler.Instance.CheckIn(ctx.UserContext(), orgID, userID, payload, nil, 0)
		if err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отметки о приходе")
		}
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отметка об уходе
// @Tags Посещаемость
// @Description Отметка об уходе за текущий день
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/check-out [post]
func (c *attendanceApiController) checkOut(ctx *fiber.Ctx) error {
	hMsg, err := attendancehandler.Instance.CheckOut(middleware.GetUserOrg(ctx), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отметки об уходе")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Список отметок посещаемости
// @Tags Посещаемость
// @Description Список отметок посещаемости с фильтром
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		attendanceapimodels.AttendanceListFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]attendanceapimodels.AttendanceView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/list [post]
func (c *attendanceApiController) list(ctx *fiber.Ctx) error {
	var payload attendanceapimodels.AttendanceListFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := attendancehandler.Instance.List(middleware.GetUserOrg(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка посещаемости")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Месячный отчет по посещаемости
// @Tags Посещаемость
// @Description Выгрузка посещаемости за месяц в Excel
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	attendanceapimodels.ReportRequest	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/report [post]
func (c *attendanceApiController) report(ctx *fiber.Ctx) error {
	var payload attendanceapimodels.ReportRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := attendancehandler.Instance.MonthlyReport(middleware.GetUserOrg(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования отчета по посещаемости")
	}
	fileName := fmt.Sprintf("attendance-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Селфи отметки
// @Tags Посещаемость
// @Description Скачать селфи, приложенное к отметке о приходе
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true    "ID отметки"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/{id}/selfie [get]
func (c *attendanceApiController) selfie(ctx *fiber.Ctx) error {
	id, err := c.GetIDByKey(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, hMsg, err := attendancehandler.Instance.GetSelfie(ctx.UserContext(), middleware.GetUserOrg(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения селфи")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(hMsg))
	}
	ctx.Set("Content-Type", "image/jpeg")
	return ctx.Send(file)
}
