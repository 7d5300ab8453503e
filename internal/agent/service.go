// Package agent implements the racer agent: it thinks (context
// updates), speaks (template resolution) and acts (simulated social
// media actions).
package agent

import (
	"github.com/rs/zerolog"

	"github.com/raceday-ai/racerd/internal/contextstore"
	"github.com/raceday-ai/racerd/internal/logging"
	"github.com/raceday-ai/racerd/internal/templates"
)

// Service wires the template registry, the shared context store and
// the action simulator together.
type Service struct {
	registry *templates.Registry
	store    *contextstore.Store
	sim      *Simulator
	logger   zerolog.Logger
}

// NewService creates an agent service around the given registry and
// context store.
func NewService(registry *templates.Registry, store *contextstore.Store) *Service {
	return &Service{
		registry: registry,
		store:    store,
		sim:      NewSimulator(),
		logger:   logging.Component("agent"),
	}
}

// Think merges new information into the agent context and returns the
// resulting full context.
func (s *Service) Think(data map[string]any) map[string]any {
	s.logger.Debug().Int("keys", len(data)).Msg("updating agent context")
	return s.store.Update(data)
}

// Context returns the current agent context.
func (s *Service) Context() map[string]any {
	return s.store.Snapshot()
}

// Speak resolves a template against the stored agent context overlaid
// with the per-request values; per-request values win on conflict.
func (s *Service) Speak(name string, extra map[string]any) (string, error) {
	vars := s.store.Snapshot()
	for key, value := range extra {
		vars[key] = value
	}

	text, err := s.registry.Resolve(name, vars)
	if err != nil {
		s.logger.Warn().Err(err).Str("template", name).Msg("generation failed")
		return "", err
	}

	s.logger.Info().
		Str("template", name).
		Int("length", len(text)).
		Msg("generated post")
	return text, nil
}

// Act performs a simulated social media action. Any action type is
// accepted and reported as success.
func (s *Service) Act(action string, data map[string]any) ActionRecord {
	return s.sim.Do(action, data)
}

// Like simulates liking a post.
func (s *Service) Like(postID, userID string) ActionRecord {
	return s.sim.Like(postID, userID)
}

// ReplyComment simulates replying to a comment.
func (s *Service) ReplyComment(comment, response string) ActionRecord {
	return s.sim.ReplyComment(comment, response)
}

// Actions returns the recent simulated actions in chronological order.
func (s *Service) Actions() []ActionRecord {
	return s.sim.History()
}
