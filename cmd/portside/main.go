package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/seafarelabs/portside/internal/bookingapi"
	"github.com/seafarelabs/portside/internal/catalog"
	"github.com/seafarelabs/portside/internal/config"
	"github.com/seafarelabs/portside/internal/observability"
	"github.com/seafarelabs/portside/internal/preference"
	"github.com/seafarelabs/portside/internal/pricing"
	"github.com/seafarelabs/portside/internal/server"
	"github.com/seafarelabs/portside/internal/snapshot"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),

		catalog.Module,
		preference.Module,
		pricing.Module,
		snapshot.Module,
		bookingapi.Module,

		server.Module,
	)
	app.Run()
}

func registerSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
