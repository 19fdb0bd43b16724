package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/nurlanmnn/roomate-sub001/database"
	"github.com/nurlanmnn/roomate-sub001/ledger"
	"github.com/nurlanmnn/roomate-sub001/models"
)

// ReminderStore gates reminder sends per balance pair. MarkIfAbsent
// returns true when no reminder was sent within the cooldown and
// records the new send atomically.
type ReminderStore interface {
	MarkIfAbsent(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// RedisReminderStore keeps cooldown keys in Redis so reminders survive
// restarts and multiple instances never double-send.
type RedisReminderStore struct {
	Client *redis.Client
}

func (s *RedisReminderStore) MarkIfAbsent(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return s.Client.SetNX(ctx, key, 1, ttl).Result()
}

// MemoryReminderStore is the fallback when Redis is unavailable. It is
// safe for concurrent use, though the scheduler runs a single loop.
type MemoryReminderStore struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

func NewMemoryReminderStore() *MemoryReminderStore {
	return &MemoryReminderStore{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *MemoryReminderStore) MarkIfAbsent(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if expiry, ok := s.entries[key]; ok && now.Before(expiry) {
		return false, nil
	}

	// Drop anything already expired while we hold the lock.
	for k, expiry := range s.entries {
		if !now.Before(expiry) {
			delete(s.entries, k)
		}
	}

	s.entries[key] = now.Add(ttl)
	return true, nil
}

// ReminderService periodically recomputes every household's balances
// and nudges both parties of each outstanding pair, subject to the
// cooldown tracked in the store.
type ReminderService struct {
	store    ReminderStore
	notifier *NotificationService
	cooldown time.Duration
	cron     *cron.Cron
}

func NewReminderService(store ReminderStore, notifier *NotificationService, cooldown time.Duration) *ReminderService {
	return &ReminderService{
		store:    store,
		notifier: notifier,
		cooldown: cooldown,
	}
}

// Start registers the cron job and launches the scheduling loop.
func (rs *ReminderService) Start(spec string) error {
	rs.cron = cron.New()
	if _, err := rs.cron.AddFunc(spec, rs.Run); err != nil {
		return fmt.Errorf("invalid reminder cron spec %q: %w", spec, err)
	}
	rs.cron.Start()
	logrus.Infof("✅ Reminder scheduler started (%s)", spec)
	return nil
}

func (rs *ReminderService) Stop() {
	if rs.cron != nil {
		rs.cron.Stop()
	}
}

// Run performs one reminder sweep over all households.
func (rs *ReminderService) Run() {
	ctx := context.Background()

	var households []models.Household
	if err := database.DB.Find(&households).Error; err != nil {
		logrus.Error("❌ Reminder sweep failed to list households: ", err)
		return
	}

	var sent int
	for _, h := range households {
		expenses, settlements := LoadLedgerRecords(h.ID)
		balances := ledger.ComputeBalances(expenses, settlements)
		sent += rs.remind(ctx, h, balances)
	}

	logrus.Infof("Reminder sweep done: %d households, %d reminders", len(households), sent)
}

func (rs *ReminderService) remind(ctx context.Context, household models.Household, balances []ledger.PairwiseBalance) int {
	var sent int
	for _, b := range balances {
		key := fmt.Sprintf("reminder:%s:%s:%s", household.ID, b.From, b.To)

		ok, err := rs.store.MarkIfAbsent(ctx, key, rs.cooldown)
		if err != nil {
			logrus.Warn("⚠️  Reminder store error: ", err)
			continue
		}
		if !ok {
			continue // still inside the cooldown window
		}

		var debtor, creditor models.User
		if err := database.DB.First(&debtor, b.From).Error; err != nil {
			continue
		}
		if err := database.DB.First(&creditor, b.To).Error; err != nil {
			continue
		}

		rs.notifier.NotifyBalanceReminder(debtor, creditor, b.Amount, household)
		sent++
	}
	return sent
}
