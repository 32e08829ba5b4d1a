package page

import (
	"go.uber.org/fx"
)

var Module = fx.Module("page",
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)
