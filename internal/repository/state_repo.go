package repository

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"

	"arxiv-monitor-backend/internal/models"
)

// Storage slot keys, kept stable across deployments.
const (
	topicsKey     = "arxiv_monitor_topics"
	emailKey      = "arxiv_monitor_email"
	prefsKey      = "arxiv_monitor_prefs"
	lastDigestKey = "arxiv_monitor_last_digest"
	onboardedKey  = "arxiv_monitor_onboarded"
)

// StateRepo owns the durable dashboard state: tracked topics, recipient
// email, digest preferences, the last-digest timestamp and the onboarding
// flag. State is read once at startup; afterwards the in-memory copy is
// authoritative for the session and each mutation re-serializes its slot in
// full. Storage failures are logged and otherwise ignored; the affected slot
// falls back to its default.
type StateRepo struct {
	kv KV

	mu         sync.RWMutex
	topics     []string
	email      string
	prefs      models.DigestPreferences
	lastDigest string
	onboarded  bool
}

func NewStateRepo(kv KV) *StateRepo {
	return &StateRepo{
		kv:     kv,
		topics: []string{},
		prefs:  models.DefaultPreferences(),
	}
}

// Load rehydrates every slot, best-effort. A missing or malformed value
// leaves the in-memory default in place.
func (r *StateRepo) Load(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if raw, ok := r.get(ctx, topicsKey); ok {
		var topics []string
		if err := json.Unmarshal([]byte(raw), &topics); err != nil {
			log.Printf("state: ignoring malformed topics slot: %v", err)
		} else if topics != nil {
			r.topics = topics
		}
	}

	if raw, ok := r.get(ctx, emailKey); ok {
		r.email = raw
	}

	if raw, ok := r.get(ctx, prefsKey); ok {
		prefs, err := models.DecodePreferences([]byte(raw))
		if err != nil {
			log.Printf("state: ignoring malformed preferences slot: %v", err)
		}
		r.prefs = prefs
	}

	if raw, ok := r.get(ctx, lastDigestKey); ok {
		r.lastDigest = raw
	}

	if raw, ok := r.get(ctx, onboardedKey); ok {
		r.onboarded = raw == "true"
	}
}

// ─── Topic set ───

// Topics returns the tracked topics in insertion order.
func (r *StateRepo) Topics() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.topics))
	copy(out, r.topics)
	return out
}

// AddTopic appends a topic after trimming. Empty or already-present topics
// (exact string match) are no-ops. Reports whether the set changed.
func (r *StateRepo) AddTopic(ctx context.Context, topic string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.addLocked(topic) {
		return false
	}
	r.persistTopics(ctx)
	return true
}

// AddTopics applies AddTopic for each entry in order, deduplicating against
// both the current set and earlier entries of the same batch. Returns the
// number of topics actually added.
func (r *StateRepo) AddTopics(ctx context.Context, topics []string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	added := 0
	for _, topic := range topics {
		if r.addLocked(topic) {
			added++
		}
	}
	if added > 0 {
		r.persistTopics(ctx)
	}
	return added
}

// RemoveTopic removes the exact match; no-op if absent.
func (r *StateRepo) RemoveTopic(ctx context.Context, topic string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.topics {
		if t == topic {
			r.topics = append(r.topics[:i], r.topics[i+1:]...)
			r.persistTopics(ctx)
			return true
		}
	}
	return false
}

func (r *StateRepo) addLocked(topic string) bool {
	trimmed := strings.TrimSpace(topic)
	if trimmed == "" {
		return false
	}
	for _, t := range r.topics {
		if t == trimmed {
			return false
		}
	}
	r.topics = append(r.topics, trimmed)
	return true
}

func (r *StateRepo) persistTopics(ctx context.Context) {
	data, err := json.Marshal(r.topics)
	if err != nil {
		log.Printf("state: failed to serialize topics: %v", err)
		return
	}
	r.set(ctx, topicsKey, string(data))
}

// ─── Email ───

func (r *StateRepo) Email() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.email
}

func (r *StateRepo) SetEmail(ctx context.Context, email string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.email = email
	r.set(ctx, emailKey, email)
}

// ─── Preferences ───

func (r *StateRepo) Preferences() models.DigestPreferences {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.prefs
}

// SetPreferences replaces the whole record. There is no per-field setter at
// this boundary; callers compose a full record first.
func (r *StateRepo) SetPreferences(ctx context.Context, prefs models.DigestPreferences) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prefs = prefs

	data, err := json.Marshal(prefs)
	if err != nil {
		log.Printf("state: failed to serialize preferences: %v", err)
		return
	}
	r.set(ctx, prefsKey, string(data))
}

// ─── Last digest timestamp ───

func (r *StateRepo) LastDigest() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastDigest
}

func (r *StateRepo) SetLastDigest(ctx context.Context, timestamp string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastDigest = timestamp
	r.set(ctx, lastDigestKey, timestamp)
}

// ─── Onboarding flag ───

func (r *StateRepo) OnboardingComplete() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.onboarded
}

func (r *StateRepo) SetOnboardingComplete(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onboarded = true
	r.set(ctx, onboardedKey, "true")
}

func (r *StateRepo) get(ctx context.Context, key string) (string, bool) {
	if r.kv == nil {
		return "", false
	}
	value, ok, err := r.kv.Get(ctx, key)
	if err != nil {
		log.Printf("state: failed to read slot %s: %v", key, err)
		return "", false
	}
	return value, ok
}

func (r *StateRepo) set(ctx context.Context, key, value string) {
	if r.kv == nil {
		return
	}
	if err := r.kv.Set(ctx, key, value); err != nil {
		log.Printf("state: failed to write slot %s: %v", key, err)
	}
}
