package preference

import (
	"github.com/seafarelabs/portside/internal/preference/service"
	"go.uber.org/fx"
)

var Module = fx.Module("preference.service",
	fx.Provide(service.New),
)
