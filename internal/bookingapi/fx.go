package bookingapi

import "go.uber.org/fx"

var Module = fx.Module("bookingapi.client",
	fx.Provide(
		New,
		func(c *Client) API { return c },
	),
)
