package authhandler

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-attendance-backend/config"
	"hr-attendance-backend/db"
	orgstore "hr-attendance-backend/lib/org/store"
	orgusersstore "hr-attendance-backend/lib/org/users/store"
	authutils "hr-attendance-backend/lib/utils/auth-utils"
	authapimodels "hr-attendance-backend/models/api/auth"
	orgapimodels "hr-attendance-backend/models/api/org"
	dbmodels "hr-attendance-backend/models/db"
)

type Provider interface {
	Login(data authapimodels.LoginRequest) (resp *authapimodels.JWTResponse, hMsg string, err error)
	Refresh(data authapimodels.JWTRefreshRequest) (resp *authapimodels.JWTResponse, hMsg string, err error)
	Me(userID string) (*orgapimodels.OrgUserView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		usersStore: orgusersstore.NewInstance(db.DB),
		orgStore:   orgstore.NewInstance(db.DB),
	}
}

type impl struct {
	usersStore orgusersstore.Provider
	orgStore   orgstore.Provider
}

const wrongCredentialsMsg = "Неверная почта или пароль"

func (i impl) Login(data authapimodels.LoginRequest) (resp *authapimodels.JWTResponse, hMsg string, err error) {
	user, err := i.usersStore.FindByEmail(data.Email)
	if err != nil {
		return nil, "", err
	}
	if user == nil || !user.IsActive {
		return nil, wrongCredentialsMsg, nil
	}
	if !authutils.CheckPassword(user.Password, data.Password) {
		return nil, wrongCredentialsMsg, nil
	}
	org, err := i.orgStore.GetByID(user.OrgID)
	if err != nil {
		return nil, "", err
	}
	if org == nil || !org.SubscriptionStatus.IsUsable() {
		return nil, "Подписка организации неактивна", nil
	}
	resp, err = i.buildTokens(*user)
	if err != nil {
		return nil, "", err
	}
	updMap := map[string]interface{}{
		"last_login": time.Now(),
	}
	if updErr := i.usersStore.Update(user.ID, updMap); updErr != nil {
		log.WithField("user_id", user.ID).WithError(updErr).Error("ошибка обновления времени входа")
	}
	return resp, "", nil
}

func (i impl) Refresh(data authapimodels.JWTRefreshRequest) (resp *authapimodels.JWTResponse, hMsg string, err error) {
	token, err := jwt.Parse(data.RefreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("неожиданный метод подписи: %v", t.Header["alg"])
		}
		return []byte(config.Conf.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, "Refresh токен недействителен", nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, "Refresh токен недействителен", nil
	}
	userID, _ := claims["sub"].(string)
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return nil, "", err
	}
	if user == nil || !user.IsActive {
		return nil, "Пользователь не найден или заблокирован", nil
	}
	resp, err = i.buildTokens(*user)
	if err != nil {
		return nil, "", err
	}
	return resp, "", nil
}

func (i impl) Me(userID string) (*orgapimodels.OrgUserView, error) {
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	view := user.ToModelView()
	return &view, nil
}

func (i impl) buildTokens(user dbmodels.OrgUser) (*authapimodels.JWTResponse, error) {
	accessToken, err := authutils.GetToken(user.ID, user.GetFullName(), user.OrgID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка генерации access токена")
	}
	refreshToken, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		return nil, errors.Wrap(err, "ошибка генерации refresh токена")
	}
	return &authapimodels.JWTResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
