package components

import (
	"mine-dine/internal/infra/mail"
	"mine-dine/internal/infra/payment"
	"mine-dine/internal/pkg/config"
	"mine-dine/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		func(cfg config.Config) config.StripeConfig { return cfg.Stripe },
		func(cfg config.Config) config.SMTPConfig { return cfg.SMTP },
		fx.Annotate(
			payment.NewStripeGateway,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			payment.NewStripeWebhookVerifier,
			fx.As(new(commands.WebhookVerifier)),
		),
		fx.Annotate(
			mail.NewSMTPMailer,
			fx.As(new(mail.Mailer)),
		),
	),
)
