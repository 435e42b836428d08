package memcache_fx

import (
	"go.uber.org/fx"
	mem "pathfinders/pkg/memcache"
)

var Module = fx.Provide(provideOtpStore)

func provideOtpStore() mem.OtpStore {
	return mem.NewOtpCodes()
}
