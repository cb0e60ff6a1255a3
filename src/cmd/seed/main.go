// cmd/seed 獎勵目錄種子工具
//
// 獎勵定義的建立與編輯屬於贊助商管理流程，不在核心引擎的寫路徑上。
// 此工具讀取 YAML 目錄檔，將贊助商獎勵寫入資料庫。
//
// 環境變數（.env 支持）：
//   FAIRWAY_DB_PATH      sqlite 資料庫路徑（預設 fairway.db）
//   FAIRWAY_CATALOG_PATH 獎勵目錄 YAML 路徑（預設 catalog.yaml）
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fairwaylab/fairway_crm/src/internal/domain/reward"
	"github.com/fairwaylab/fairway_crm/src/internal/infrastructure/persistence"
	rewardpersistence "github.com/fairwaylab/fairway_crm/src/internal/infrastructure/persistence/reward"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// catalogFile 獎勵目錄 YAML 結構
type catalogFile struct {
	Sponsors []sponsorEntry `yaml:"sponsors"`
}

type sponsorEntry struct {
	SponsorID string        `yaml:"sponsor_id"` // UUID；留空時自動產生
	Name      string        `yaml:"name"`
	Rewards   []rewardEntry `yaml:"rewards"`
}

type rewardEntry struct {
	Name           string          `yaml:"name"`
	Type           string          `yaml:"type"`            // discount / product / experience / credit
	Value          string          `yaml:"value"`           // 面額（十進位字串，如 "150.00"）
	ExpiresAt      *time.Time      `yaml:"expires_at"`      // 留空 = 永不過期
	MaxRedemptions *int            `yaml:"max_redemptions"` // 留空 = 無限量
	Conditions     conditionsEntry `yaml:"conditions"`
}

type conditionsEntry struct {
	MinScore      *int    `yaml:"min_score"`
	MaxScore      *int    `yaml:"max_score"`
	RequiredHoles *int    `yaml:"required_holes"`
	GameFormat    *string `yaml:"game_format"`
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	// .env 不存在時沿用現有環境變數
	_ = godotenv.Load()

	dbPath := envOrDefault("FAIRWAY_DB_PATH", "fairway.db")
	catalogPath := envOrDefault("FAIRWAY_CATALOG_PATH", "catalog.yaml")

	catalog, err := loadCatalog(catalogPath)
	if err != nil {
		return fmt.Errorf("load catalog %s: %w", catalogPath, err)
	}

	db, err := gorm.Open(sqlite.Open(persistence.DSN(dbPath)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("open database %s: %w", dbPath, err)
	}

	if err := persistence.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	rewardRepo := rewardpersistence.NewRewardRepository(db)

	total := 0
	for _, sponsor := range catalog.Sponsors {
		sponsorID, err := resolveSponsorID(sponsor.SponsorID)
		if err != nil {
			return fmt.Errorf("sponsor %q: %w", sponsor.Name, err)
		}

		for _, entry := range sponsor.Rewards {
			definition, err := buildDefinition(sponsorID, entry)
			if err != nil {
				return fmt.Errorf("sponsor %q reward %q: %w", sponsor.Name, entry.Name, err)
			}

			if err := rewardRepo.Save(nil, definition); err != nil {
				return fmt.Errorf("save reward %q: %w", entry.Name, err)
			}

			log.Printf("seeded reward %q (%s) for sponsor %q", entry.Name, definition.RewardID(), sponsor.Name)
			total++
		}
	}

	log.Printf("done: %d rewards seeded into %s", total, dbPath)
	return nil
}

func loadCatalog(path string) (*catalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var catalog catalogFile
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

func resolveSponsorID(s string) (reward.SponsorID, error) {
	if s == "" {
		return reward.NewSponsorID(), nil
	}
	return reward.SponsorIDFromString(s)
}

func buildDefinition(sponsorID reward.SponsorID, entry rewardEntry) (*reward.RewardDefinition, error) {
	rewardType, err := reward.NewRewardType(entry.Type)
	if err != nil {
		return nil, err
	}

	value, err := decimal.NewFromString(entry.Value)
	if err != nil {
		return nil, fmt.Errorf("invalid value %q: %w", entry.Value, err)
	}

	conditions := reward.EligibilityConditions{
		MinScore:      entry.Conditions.MinScore,
		MaxScore:      entry.Conditions.MaxScore,
		RequiredHoles: entry.Conditions.RequiredHoles,
		GameFormat:    entry.Conditions.GameFormat,
	}

	return reward.NewRewardDefinition(
		sponsorID,
		entry.Name,
		rewardType,
		value,
		entry.ExpiresAt,
		entry.MaxRedemptions,
		conditions,
	)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
