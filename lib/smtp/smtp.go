package smtp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

var Instance Provider

type Provider interface {
	SendEMail(from, to, message, subject string) error
	SendHTMLEMail(fromEmail, fromName, to, subject, htmlBody string) error
}

func Connect(user, password, host, port string, tlsEnabled bool) error {
	Instance = &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		tlsEnabled: tlsEnabled,
	}
	return nil
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	tlsEnabled bool
}

func (i impl) isConfigured() bool {
	return i.user != "" && i.host != "" && i.port != ""
}

// SendEMail служебные plain-text письма (регистрация, сброс пароля)
func (i impl) SendEMail(from, to, message, subject string) (err error) {
	logger := log.WithField("sender", from)
	if !i.isConfigured() {
		logger.Warn("Письмо не отправлено, тк не настроен smtp клиент")
		return nil
	}
	sendTo := []string{
		to,
	}
	auth := sasl.NewPlainClient("", i.user, i.password)
	mimeHeaders := "MIME-version: 1.0;\nContent-Type: text/plain; charset=\"UTF-8\";\r\n"
	body := strings.NewReader(fmt.Sprintf("Subject: %s\n%s\r\n Отправитель: %s\r\n %s\r\n", subject, mimeHeaders, from, message))

	if i.tlsEnabled {
		err = smtp.SendMailTLS(i.host+":"+i.port, auth, i.user, sendTo, body)
	} else {
		err = smtp.SendMail(i.host+":"+i.port, auth, i.user, sendTo, body)
	}
	if err != nil {
		log.WithError(err).Error("Ошибка отправки сообщения")
		return err
	}
	logger.Info("письмо отправлено")
	return nil
}

// SendHTMLEMail html-уведомления из очереди, отправка через gomail
func (i impl) SendHTMLEMail(fromEmail, fromName, to, subject, htmlBody string) error {
	logger := log.WithField("sender", fromEmail).WithField("recipient", to)
	if !i.isConfigured() {
		return errors.New("smtp клиент не настроен")
	}
	port, err := strconv.Atoi(i.port)
	if err != nil {
		return errors.Wrap(err, "некорректный порт smtp")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", fromEmail, fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(i.host, port, i.user, i.password)
	if err := d.DialAndSend(m); err != nil {
		logger.WithError(err).Error("Ошибка отправки html письма")
		return err
	}
	logger.Info("письмо отправлено")
	return nil
}
