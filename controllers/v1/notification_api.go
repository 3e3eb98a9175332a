package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hr-attendance-backend/controllers"
	notificationhandler "hr-attendance-backend/lib/notification"
	"hr-attendance-backend/middleware"
	apimodels "hr-attendance-backend/models/api"
	notificationapimodels "hr-attendance-backend/models/api/notification"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notifications", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.OrgAdminRequired())
		router.Post("list", controller.list)
	})
}

// @Summary Список уведомлений
// @Tags Уведомления
// @Description Очередь почтовых уведомлений организации
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		notificationapimodels.NotificationListFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]notificationapimodels.NotificationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/list [post]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	var payload notificationapimodels.NotificationListFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := notificationhandler.Instance.List(middleware.GetUserOrg(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка уведомлений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}
