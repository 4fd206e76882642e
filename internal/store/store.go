// Package store provides the data collaborators of the sync core: the
// available-category list and the learned category mappings, both loaded
// from YAML files, plus an in-memory bank-transaction store.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/emirfredy/ynab-syncher-sub000/internal/logging"
	"github.com/emirfredy/ynab-syncher-sub000/internal/models"
)

// categoryRecord is the YAML shape of one available budget category
type categoryRecord struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type categoriesFile struct {
	Categories []categoryRecord `yaml:"categories"`
}

// mappingRecord is the YAML shape of one learned mapping. A record without
// a category id maps to an inferred category name not yet tied to a budget
// category.
type mappingRecord struct {
	ID           string   `yaml:"id"`
	CategoryID   string   `yaml:"category_id,omitempty"`
	CategoryName string   `yaml:"category_name"`
	Tokens       []string `yaml:"tokens"`
	Confidence   float64  `yaml:"confidence"`
	Occurrences  int      `yaml:"occurrences"`
}

type mappingsFile struct {
	Mappings []mappingRecord `yaml:"mappings"`
}

// findConfigFile looks for a configuration file in standard locations
func findConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		configPath := filepath.Join(homeDir, ".config", "ynab-sync", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// CategoryStore loads the categories available in the budget
type CategoryStore struct {
	CategoriesFile string
	log            logging.Logger
}

// NewCategoryStore creates a store backed by the given YAML file
func NewCategoryStore(categoriesFile string, logger logging.Logger) *CategoryStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &CategoryStore{CategoriesFile: categoriesFile, log: logger}
}

// FindAllAvailableCategories returns every category available in the
// budget. A missing file yields an empty list, not an error.
func (s *CategoryStore) FindAllAvailableCategories() ([]models.Category, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	path, err := findConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Warn("Categories file not found", logging.Field{Key: logging.FieldInputFile, Value: filename})
			return []models.Category{}, nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var parsed categoriesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}

	categories := make([]models.Category, 0, len(parsed.Categories))
	for _, record := range parsed.Categories {
		categories = append(categories, models.NewBudgetCategory(record.ID, record.Name))
	}
	return categories, nil
}

// MappingStore loads learned category mappings keyed by pattern
type MappingStore struct {
	MappingsFile string
	log          logging.Logger
}

// NewMappingStore creates a store backed by the given YAML file
func NewMappingStore(mappingsFile string, logger logging.Logger) *MappingStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &MappingStore{MappingsFile: mappingsFile, log: logger}
}

// FindMappingsForPattern returns the learned mappings whose token set
// overlaps the given pattern. A missing file yields an empty list.
func (s *MappingStore) FindMappingsForPattern(pattern models.TransactionPattern) ([]models.CategoryMapping, error) {
	all, err := s.loadAll()
	if err != nil {
		return nil, err
	}

	matching := make([]models.CategoryMapping, 0)
	for _, mapping := range all {
		if mapping.MatchesPattern(pattern) {
			matching = append(matching, mapping)
		}
	}
	return matching, nil
}

func (s *MappingStore) loadAll() ([]models.CategoryMapping, error) {
	filename := s.MappingsFile
	if filename == "" {
		filename = "mappings.yaml"
	}

	path, err := findConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Warn("Mappings file not found", logging.Field{Key: logging.FieldInputFile, Value: filename})
			return []models.CategoryMapping{}, nil
		}
		return nil, fmt.Errorf("error resolving mappings file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading mappings file: %w", err)
	}

	var parsed mappingsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("error parsing mappings file: %w", err)
	}

	mappings := make([]models.CategoryMapping, 0, len(parsed.Mappings))
	for _, record := range parsed.Mappings {
		category := models.NewInferredCategory(record.CategoryName)
		if record.CategoryID != "" {
			category = models.NewBudgetCategory(record.CategoryID, record.CategoryName)
		}
		mappings = append(mappings, models.CategoryMapping{
			ID:              record.ID,
			Category:        category,
			Tokens:          models.NewTransactionPattern(record.Tokens...),
			Confidence:      record.Confidence,
			OccurrenceCount: record.Occurrences,
		})
	}
	return mappings, nil
}
