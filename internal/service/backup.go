package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pizzapos-backend/internal/domain"
	"pizzapos-backend/internal/ledger"
	"pizzapos-backend/internal/logger"
	"pizzapos-backend/internal/repository"
)

var ErrTelegramNotConfigured = errors.New("telegram token or chat id is not configured")

// Backup is the on-demand JSON snapshot of everything except the ledger
// itself, which stays in the store as the audit trail.
type Backup struct {
	Date       time.Time          `json:"date"`
	Config     *domain.AppConfig  `json:"config,omitempty"`
	Products   []domain.Product   `json:"products"`
	StockItems []domain.StockItem `json:"stock_items"`
	AppUsers   []domain.AppUser   `json:"app_users"`
}

type backupService struct {
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
	userRepo    repository.UserRepository
	configRepo  repository.ConfigRepository
	loc         *time.Location
}

func NewBackupService(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	userRepo repository.UserRepository,
	configRepo repository.ConfigRepository,
	loc *time.Location,
) BackupService {
	return &backupService{
		productRepo: productRepo,
		stockRepo:   stockRepo,
		userRepo:    userRepo,
		configRepo:  configRepo,
		loc:         loc,
	}
}

func (s *backupService) Snapshot(ctx context.Context) (*Backup, error) {
	cfg, err := s.configRepo.Get(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	products, err := s.productRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.stockRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &Backup{
		Date:       time.Now().In(s.loc),
		Config:     cfg,
		Products:   products,
		StockItems: items,
		AppUsers:   users,
	}, nil
}

func (s *backupService) SendToTelegram(ctx context.Context) error {
	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrTelegramNotConfigured
		}
		return err
	}
	if cfg.TelegramToken == "" || cfg.TelegramChatID == "" {
		return ErrTelegramNotConfigured
	}
	chatID, err := strconv.ParseInt(cfg.TelegramChatID, 10, 64)
	if err != nil {
		return &domain.ValidationError{Field: "telegram_chat_id", Reason: "chat id must be numeric"}
	}

	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return fmt.Errorf("telegram connect: %w", err)
	}
	name := "backup_" + ledger.CivilDate(snapshot.Date, s.loc) + ".json"
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	if _, err := bot.Send(doc); err != nil {
		return fmt.Errorf("telegram upload: %w", err)
	}
	logger.Info("Backup sent to Telegram", "file", name, "bytes", len(data))
	return nil
}

// Restore inserts the snapshot rows back into the store. Rows receive fresh
// identities; no dedup is attempted, matching the manual restore flow.
func (s *backupService) Restore(ctx context.Context, data []byte) error {
	var backup Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return &domain.ValidationError{Field: "backup", Reason: "not a valid backup file"}
	}
	for i := range backup.Products {
		if err := s.productRepo.Create(ctx, &backup.Products[i]); err != nil {
			return err
		}
	}
	for i := range backup.StockItems {
		if err := s.stockRepo.Create(ctx, &backup.StockItems[i]); err != nil {
			return err
		}
	}
	for i := range backup.AppUsers {
		if err := s.userRepo.Create(ctx, &backup.AppUsers[i]); err != nil {
			return err
		}
	}
	if backup.Config != nil {
		if err := s.configRepo.Save(ctx, backup.Config); err != nil {
			return err
		}
	}
	logger.Info("Backup restored",
		"products", len(backup.Products),
		"stock_items", len(backup.StockItems),
		"users", len(backup.AppUsers))
	return nil
}
