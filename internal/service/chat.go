package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/Rrens/kopiloka/internal/assistant"
	"github.com/Rrens/kopiloka/internal/catalog"
	"github.com/Rrens/kopiloka/internal/domain"
	"github.com/Rrens/kopiloka/internal/store"
	"github.com/rs/zerolog/log"
)

// ChatService runs the assistant conversation of each session
type ChatService struct {
	store     domain.DocumentStore
	responder *assistant.Responder
	catalog   *catalog.Catalog
	delayMin  time.Duration
	delayMax  time.Duration
	now       func() time.Time

	mu      sync.Mutex
	rng     *rand.Rand
	pending map[string]context.CancelFunc
	resets  map[string]uint64

	// commitMu orders conversation writes of Send against Reset
	commitMu sync.Mutex
}

// NewChatService creates a chat service. Replies are delayed by a duration
// drawn from [delayMin, delayMax].
func NewChatService(docs domain.DocumentStore, responder *assistant.Responder, cat *catalog.Catalog, delayMin, delayMax time.Duration) *ChatService {
	if delayMax < delayMin {
		delayMax = delayMin
	}
	return &ChatService{
		store:     docs,
		responder: responder,
		catalog:   cat,
		delayMin:  delayMin,
		delayMax:  delayMax,
		now:       time.Now,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		pending:   make(map[string]context.CancelFunc),
		resets:    make(map[string]uint64),
	}
}

// History returns the session's conversation, starting a fresh one for
// new sessions
func (s *ChatService) History(ctx context.Context, sessionID string) (*assistant.Conversation, error) {
	var conv assistant.Conversation
	found, err := s.store.Get(ctx, store.ChatKey(sessionID), &conv)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	if !found || len(conv.Turns) == 0 {
		return assistant.NewConversation(s.now().UTC()), nil
	}
	return &conv, nil
}

// Send records the user's message, waits the reply delay and records the
// assistant's reply. Only one message per session may await a reply.
// When ctx ends or the conversation is reset during the wait, the reply is
// dropped and the user turn stays.
func (s *ChatService) Send(ctx context.Context, sessionID, text string) (*domain.ChatExchange, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if _, busy := s.pending[sessionID]; busy {
		s.mu.Unlock()
		return nil, ErrReplyPending
	}
	s.pending[sessionID] = cancel
	generation := s.resets[sessionID]
	delay := s.replyDelay()
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.pending, sessionID)
		s.mu.Unlock()
	}()

	conv, err := s.History(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	userTurn := conv.Append(domain.RoleUser, text, s.now().UTC())
	if err := s.commit(ctx, sessionID, generation, conv); err != nil {
		return nil, err
	}

	if err := wait(ctx, delay); err != nil {
		log.Debug().Str("session_id", sessionID).Msg("chat reply dropped")
		return nil, err
	}

	reply := s.responder.Respond(text, s.catalog.Products())
	log.Debug().
		Str("session_id", sessionID).
		Str("rule", s.responder.Classify(text)).
		Msg("chat reply")

	// reload so a concurrent reset is not overwritten
	conv, err = s.History(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	replyTurn := conv.Append(domain.RoleAssistant, reply, s.now().UTC())
	if err := s.commit(ctx, sessionID, generation, conv); err != nil {
		if IsReplyDropped(err) {
			log.Debug().Str("session_id", sessionID).Msg("chat reply dropped")
		}
		return nil, err
	}

	return &domain.ChatExchange{User: userTurn, Reply: replyTurn}, nil
}

// Reset clears the conversation and drops any reply still in flight
func (s *ChatService) Reset(ctx context.Context, sessionID string) (*assistant.Conversation, error) {
	s.mu.Lock()
	if cancel, ok := s.pending[sessionID]; ok {
		cancel()
	}
	s.resets[sessionID]++
	s.mu.Unlock()

	conv := &assistant.Conversation{}
	conv.Reset(s.now().UTC())

	s.commitMu.Lock()
	defer s.commitMu.Unlock()
	if err := s.save(ctx, sessionID, conv); err != nil {
		return nil, err
	}
	return conv, nil
}

// Suggestions returns the suggested questions for the session
func (s *ChatService) Suggestions(ctx context.Context, sessionID string) ([]string, error) {
	conv, err := s.History(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return conv.Suggestions(), nil
}

// Pending reports whether a reply is in flight for the session
func (s *ChatService) Pending(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[sessionID]
	return ok
}

func (s *ChatService) save(ctx context.Context, sessionID string, conv *assistant.Conversation) error {
	if err := s.store.Put(ctx, store.ChatKey(sessionID), conv); err != nil {
		return fmt.Errorf("failed to save conversation: %w", err)
	}
	return nil
}

// commit saves conv unless the session was reset after generation was
// read or ctx has ended. A reset bumps the generation before it takes
// commitMu, so it either rejects this write or overwrites it.
func (s *ChatService) commit(ctx context.Context, sessionID string, generation uint64, conv *assistant.Conversation) error {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	s.mu.Lock()
	reset := s.resets[sessionID] != generation
	s.mu.Unlock()
	if reset {
		return context.Canceled
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.save(ctx, sessionID, conv)
}

// replyDelay must be called with mu held
func (s *ChatService) replyDelay() time.Duration {
	spread := s.delayMax - s.delayMin
	if spread <= 0 {
		return s.delayMin
	}
	return s.delayMin + time.Duration(s.rng.Int63n(int64(spread)+1))
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsReplyDropped reports whether err means the reply was abandoned
func IsReplyDropped(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
