package app

import (
	"github.com/carousell/ct-go/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"

	"github.com/colorful-demo/commerce-gateway/internal/config"
	"github.com/colorful-demo/commerce-gateway/internal/repo/commercetools"
	"github.com/colorful-demo/commerce-gateway/internal/server"
	"github.com/colorful-demo/commerce-gateway/internal/usecase"
)

func Invoke(funcs ...any) *fx.App {
	log := logger.MustNamed("app")
	conf := config.MustLoad()
	log.Debugw("config loaded",
		"server_addr", conf.Server.Addr,
		"project_key", conf.Commercetools.ProjectKey,
	)
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Unwrap().Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			server.NewHandler,

			usecase.NewProductUsecase,

			commercetools.NewTokenSource,
			commercetools.NewClient,
		),
		fx.Supply(conf),
		fx.Invoke(funcs...),
	)
}
