package bootstrap

import (
	"mealvoucher/internal/pkg/config"
	"mealvoucher/internal/pkg/signer"

	"go.uber.org/fx"
)

var SignerModule = fx.Module("signer",
	fx.Provide(
		fx.Annotate(
			NewVoucherSigner,
			fx.As(new(signer.Signer)),
		),
	),
)

func NewVoucherSigner(cfg config.Config) (*signer.HMACSigner, error) {
	return signer.NewHMACSigner([]byte(cfg.Voucher.SigningKey))
}
