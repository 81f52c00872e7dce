package session

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Service hands out session identifiers. Sessions are not tracked: every
// client shares the same scripted conversations.
type Service struct {
	settings Settings
	newID    func() string
	log      zerolog.Logger
}

// NewService wires the session service.
func NewService(settings Settings, log zerolog.Logger) *Service {
	return &Service{
		settings: settings,
		newID:    func() string { return uuid.New().String() },
		log:      log.With().Str("component", "session-service").Logger(),
	}
}

// Start returns the session payload with a fresh identifier.
func (s *Service) Start(ctx context.Context) Info {
	info := Info{
		Name:        s.settings.BotName,
		Session:     s.newID(),
		MultiTurn:   s.settings.MultiTurn,
		FileSupport: s.settings.FileSupport,
	}
	s.log.Debug().Str("session", info.Session).Msg("session started")
	return info
}
