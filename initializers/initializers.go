package initializers

import (
	"context"
	"time"

	"hr-attendance-backend/config"
	"hr-attendance-backend/fiberlog"
	attendancehandler "hr-attendance-backend/lib/attendance"
	autoabsentworker "hr-attendance-backend/lib/attendance/auto-absent-worker"
	authhandler "hr-attendance-backend/lib/auth"
	xlsexport "hr-attendance-backend/lib/export/xls"
	leavehandler "hr-attendance-backend/lib/leave"
	notificationhandler "hr-attendance-backend/lib/notification"
	mailworker "hr-attendance-backend/lib/notification/mail-worker"
	orghandler "hr-attendance-backend/lib/org"
	trialworker "hr-attendance-backend/lib/org/trial-worker"
	orgusershandler "hr-attendance-backend/lib/org/users"
	"hr-attendance-backend/lib/utils/lock"
	connectionhub "hr-attendance-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	lock.InitResourceLock(ctx)
	xlsexport.NewHandler()
	notificationhandler.NewHandler()
	orghandler.NewHandler()
	orgusershandler.NewHandler()
	authhandler.NewHandler()
	leavehandler.NewHandler()
	attendancehandler.NewHandler()
	go initWorkers(ctx)
}

// запускаем с промежутком в 10 сек чтоб размыть нагрузку
func initWorkers(ctx context.Context) {
	// Задача отправки писем из очереди уведомлений
	mailworker.StartWorker(ctx)

	if makeTimeGap(ctx) {
		// Задача автоматической отметки отсутствия
		autoabsentworker.StartWorker(ctx)
	}
	if makeTimeGap(ctx) {
		// Задача завершения истекших триалов
		trialworker.StartWorker(ctx)
	}
}

func makeTimeGap(ctx context.Context) (canRun bool) {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(time.Second * 10):
		return true
	}
}
