package initializers

import (
	"fntp-backend/config"
	"fntp-backend/lib/smtp"

	log "github.com/sirupsen/logrus"
)

func InitSmtp() {
	if config.Conf.Smtp.Host == "" {
		log.Warn("SMTP не настроен, уведомления практикующему специалисту отключены")
		return
	}
	err := smtp.Connect(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, *config.Conf.Smtp.TLSEnabled, config.Conf.Practice.Name)
	if err != nil {
		panic(err.Error())
	}
}
