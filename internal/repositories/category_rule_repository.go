package repositories

import (
	"errors"
	"fmt"

	"ledger-engine/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrCategoryRuleNotFound = errors.New("category rule not found")
)

// categoryRuleRepository implements CategoryRuleRepositoryInterface
type categoryRuleRepository struct {
	db *gorm.DB
}

// NewCategoryRuleRepository creates a new category rule repository
func NewCategoryRuleRepository(db *gorm.DB) CategoryRuleRepositoryInterface {
	return &categoryRuleRepository{
		db: db,
	}
}

// GetByNormDesc retrieves the rule for one normalized description
func (r *categoryRuleRepository) GetByNormDesc(normDesc string) (*models.CategoryRule, error) {
	var rule models.CategoryRule
	if err := r.db.Where("norm_desc = ?", normDesc).First(&rule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryRuleNotFound
		}
		return nil, fmt.Errorf("failed to get category rule: %w", err)
	}
	return &rule, nil
}

// GetByNormDescs retrieves rules for a set of normalized descriptions in
// one query. Descriptions without a rule are simply absent from the map.
func (r *categoryRuleRepository) GetByNormDescs(normDescs []string) (map[string]models.CategoryRule, error) {
	result := make(map[string]models.CategoryRule, len(normDescs))
	if len(normDescs) == 0 {
		return result, nil
	}

	var rules []models.CategoryRule
	if err := r.db.Where("norm_desc IN ?", normDescs).Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to get category rules: %w", err)
	}

	for _, rule := range rules {
		result[rule.NormDesc] = rule
	}
	return result, nil
}

// CreateBatch inserts newly learned rules. Concurrent parses may race to
// insert the same normalized description; the unique index plus
// ON CONFLICT DO NOTHING makes that race benign (first write wins).
func (r *categoryRuleRepository) CreateBatch(rules []models.CategoryRule) error {
	if len(rules) == 0 {
		return nil
	}

	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "norm_desc"}},
		DoNothing: true,
	}).Create(&rules).Error; err != nil {
		return fmt.Errorf("failed to create category rules: %w", err)
	}
	return nil
}
