package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"pathfinders/internal/repositories"
	"pathfinders/internal/services"
	mem "pathfinders/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountService, provideProfileRepo)

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideAccountService(
	profileRepo repositories.ProfileRepository,
	mailService services.IMailService,
	otpStore mem.OtpStore,
	funnel services.FunnelServiceInterface,
) services.AccountServiceInterface {
	return services.NewAccountService(profileRepo, mailService, otpStore, funnel)
}
