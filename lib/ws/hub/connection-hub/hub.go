package connectionhub

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"

	"hr-attendance-backend/db"
	pushdatastore "hr-attendance-backend/lib/ws/data-store"
	"hr-attendance-backend/models"
	dbmodels "hr-attendance-backend/models/db"
	wsmodels "hr-attendance-backend/models/ws"
)

type Provider interface {
	AddClient(userID string, conn *websocket.Conn)
	DeleteClient(userID string)
	SendMessage(msg wsmodels.ServerMessage)
	SendClose(userID string)
	IsConnected(userID string) bool
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients: map[string]clientSession{},
		store:   pushdatastore.NewInstance(db.DB),
	}
}

type impl struct {
	mx      sync.RWMutex
	clients map[string]clientSession //map[userID]
	store   pushdatastore.Provider
}

func (i *impl) DeleteClient(userID string) {
	i.mx.Lock()
	defer i.mx.Unlock()
	sess, ok := i.clients[userID]
	if !ok {
		return
	}
	delete(i.clients, userID)
	sess.stop()
	close(sess.sendCh)
}

func (i *impl) AddClient(userID string, conn *websocket.Conn) {
	i.mx.Lock()
	oldSess, ok := i.clients[userID]
	if ok {
		oldSess.stop()
	}
	i.clients[userID] = newSession(conn)
	i.mx.Unlock()
	go i.sendDelayedMessages(userID)
}

// SendMessage доставляет сообщение в открытую сессию,
// для офлайн-пользователя пуш сохраняется и уходит при следующем подключении
func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	userID := msg.ToUserID
	i.mx.RLock()
	sess, ok := i.clients[userID]
	i.mx.RUnlock()
	if ok {
		sess.sendCh <- msg
		return
	}
	err := i.store.Create(dbmodels.PushData{
		UserID: userID,
		Code:   models.NotificationType(msg.Code),
		Msg:    msg.Msg,
	})
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("ошибка сохранения отложенного события")
	}
}

func (i *impl) SendClose(userID string) {
	i.mx.RLock()
	defer i.mx.RUnlock()
	sess, ok := i.clients[userID]
	if ok {
		sess.stop()
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mx.RLock()
	defer i.mx.RUnlock()
	sess, ok := i.clients[userID]
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}

func (i *impl) sendDelayedMessages(userID string) {
	logger := log.WithField("user_id", userID)
	list, err := i.store.List(userID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка не отправленных событий")
		return
	}
	sendedIDs := []string{}
	for _, item := range list {
		if i.IsConnected(userID) {
			msg := wsmodels.ServerMessage{
				ToUserID: userID,
				Time:     item.CreatedAt.Format("02.01.2006 15:04:05"),
				Code:     string(item.Code),
				Msg:      item.Msg,
			}
			i.SendMessage(msg)
			sendedIDs = append(sendedIDs, item.ID)
		}
	}
	if len(sendedIDs) > 0 {
		err = i.store.Delete(sendedIDs)
		if err != nil {
			logger.WithError(err).Error("ошибка удаления отправленных событий")
			return
		}
	}
}
