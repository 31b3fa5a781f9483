package storage

import (
	"errors"

	"gorm.io/gorm"

	"battleforge/internal/game"
)

// ErrNotFound is returned for missing characters and battles so callers do
// not have to depend on gorm error values.
var ErrNotFound = errors.New("record not found")

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateCharacter(c *game.Character) error {
	return r.db.Create(c).Error
}

func (r *sqliteRepository) GetCharacterByUUID(uuid string) (*game.Character, error) {
	var c game.Character
	if err := r.db.Where("uuid = ?", uuid).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *sqliteRepository) UpdateCharacter(c *game.Character) error {
	return r.db.Save(c).Error
}

func (r *sqliteRepository) GetTopCharacters(limit int) ([]game.Character, error) {
	if limit <= 0 {
		limit = 10
	}
	var chars []game.Character
	if err := r.db.Model(&game.Character{}).
		Order("mmr DESC").
		Order("total_wins DESC").
		Limit(limit).
		Find(&chars).Error; err != nil {
		return nil, err
	}
	return chars, nil
}

func (r *sqliteRepository) CreateBattle(b *game.Battle) error {
	return r.db.Create(b).Error
}

func (r *sqliteRepository) GetBattleByUUID(uuid string) (*game.Battle, error) {
	var b game.Battle
	if err := r.db.Where("uuid = ?", uuid).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *sqliteRepository) UpdateBattle(b *game.Battle) error {
	return r.db.Save(b).Error
}

func (r *sqliteRepository) FindActionableBattles(now int64, turnTimeoutSec int64) ([]game.Battle, error) {
	var battles []game.Battle
	err := r.db.
		Where("is_finished = ? AND abandoned = ?", false, false).
		Where("last_action_at <= ? OR (wildcard_deadline > 0 AND wildcard_deadline <= ?)", now-turnTimeoutSec, now).
		Find(&battles).Error
	if err != nil {
		return nil, err
	}
	return battles, nil
}
