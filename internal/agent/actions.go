package agent

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/raceday-ai/racerd/internal/logging"
)

// Action types with dedicated simulator methods. Unrecognized types
// are still accepted and echoed back as generic actions.
const (
	ActionLike       = "simulate_like"
	ActionReply      = "reply_comment"
	ActionPostStatus = "post_status_update"
	ActionMention    = "mention_teammate_or_competitor"
)

// ActionRecord describes one simulated social media action. Nothing is
// ever published anywhere; records live only in process memory.
type ActionRecord struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	Details   string         `json:"details"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// Simulator performs no-op social media actions and keeps a bounded
// in-memory history of them.
type Simulator struct {
	logger  zerolog.Logger
	history *actionRing
}

const defaultHistorySize = 100

// NewSimulator returns a simulator with the default history size.
func NewSimulator() *Simulator {
	return &Simulator{
		logger:  logging.Component("actions"),
		history: newActionRing(defaultHistorySize),
	}
}

// Like simulates liking a post.
func (s *Simulator) Like(postID, userID string) ActionRecord {
	return s.record(ActionLike,
		fmt.Sprintf("simulated liking post %s as user %s", postID, userID),
		map[string]any{"post_id": postID, "user_id": userID})
}

// ReplyComment simulates replying to a fan comment.
func (s *Simulator) ReplyComment(comment, response string) ActionRecord {
	return s.record(ActionReply,
		fmt.Sprintf("replied to comment %q with %q", comment, response),
		map[string]any{"comment_text": comment, "agent_response": response})
}

// PostStatus simulates publishing a status update.
func (s *Simulator) PostStatus(text string) ActionRecord {
	return s.record(ActionPostStatus,
		fmt.Sprintf("posted status update %q", text),
		map[string]any{"status_text": text})
}

// Mention simulates mentioning a teammate or competitor.
func (s *Simulator) Mention(text string) ActionRecord {
	return s.record(ActionMention,
		fmt.Sprintf("simulated mention: %s", text),
		map[string]any{"mention_text": text})
}

// Do simulates an arbitrary action type. Every action type is accepted
// and reported as success; known types get richer detail strings.
func (s *Simulator) Do(action string, data map[string]any) ActionRecord {
	switch action {
	case ActionLike:
		return s.Like(stringField(data, "post_id"), stringField(data, "user_id"))
	case ActionReply:
		return s.ReplyComment(stringField(data, "comment_text"), stringField(data, "agent_response"))
	case ActionPostStatus:
		return s.PostStatus(stringField(data, "status_text"))
	case ActionMention:
		return s.Mention(stringField(data, "mention_text"))
	default:
		return s.record(action, fmt.Sprintf("simulated action %q", action), data)
	}
}

// History returns recorded actions in chronological order.
func (s *Simulator) History() []ActionRecord {
	return s.history.snapshot()
}

func (s *Simulator) record(action, details string, data map[string]any) ActionRecord {
	rec := ActionRecord{
		ID:        uuid.NewString(),
		Action:    action,
		Details:   details,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
	s.history.add(rec)

	s.logger.Info().
		Str("action", rec.Action).
		Str("action_id", rec.ID).
		Msg(details)
	return rec
}

func stringField(data map[string]any, key string) string {
	if data == nil {
		return ""
	}
	value, ok := data[key]
	if !ok || value == nil {
		return ""
	}
	return fmt.Sprint(value)
}
