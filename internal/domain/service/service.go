package service

import (
	"time"

	"github.com/diegoclair/send-it-later/internal/config"
	"github.com/diegoclair/send-it-later/internal/domain/contract"
	"github.com/diegoclair/send-it-later/internal/domain/posttime"
	"go.uber.org/zap"
)

type Services struct {
	Message contract.MessageService
	// Installation is nil in single-workspace mode.
	Installation contract.InstallationService
	Authorizer   contract.Authorizer
}

// New wires the services for the configured mode. dm may be nil in
// single-workspace mode since nothing is persisted there.
func New(cfg *config.Config, dm contract.DataManager, slackClients contract.SlackClientFactory, log *zap.Logger) *Services {
	s := &Services{
		Message: newMessage(slackClients, posttime.New(), cfg.AppInstallURL, log),
	}

	if cfg.Mode() == config.ModeSingleWorkspace {
		s.Authorizer = newStaticAuthorizer(cfg.SlackBotToken, cfg.SlackUserToken)
		return s
	}

	installation := newInstallation(dm, time.Now, log)
	s.Installation = installation
	s.Authorizer = installation

	return s
}
