package bootstrap

import (
	"stagepass/internal/infra/mailer"
	"stagepass/internal/pkg/config"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		NewMailer,
	),
)

func NewMailer(cfg config.Config) mailer.Sender {
	return mailer.NewSender(cfg.Mail)
}
