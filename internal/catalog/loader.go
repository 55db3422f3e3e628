package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aldoria/market-client/internal/domain"
	"github.com/aldoria/market-client/internal/validation"
)

// Sentinel errors for the catalog loader
var (
	ErrDuplicateID   = errors.New("duplicate item id")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Schema paths
const (
	ItemsSchemaPath = "configs/schemas/items.schema.json"
)

// Config represents the JSON configuration for the item catalog
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`
}

// Def represents a single item definition in the JSON
type Def struct {
	ID          string `json:"id"`
	Tier        int    `json:"tier"`
	Quality     int    `json:"quality,omitempty"`
	Type        string `json:"type"`
	Name        string `json:"name,omitempty"` // Derived from the ID when omitted
	RarityColor string `json:"rarity_color,omitempty"`
}

// Loader handles loading and validating the item catalog configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads and parses an items JSON file
func (l *catalogLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	// Validate against schema first
	if err := l.schemaValidator.ValidateBytes(data, ItemsSchemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks the catalog configuration for errors
func (l *catalogLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	seen := make(map[string]bool, len(config.Items))

	for i := range config.Items {
		def := &config.Items[i]

		if def.ID == "" {
			return fmt.Errorf("%w: item %d %s", ErrInvalidConfig, i, ErrMsgEmptyID)
		}
		if seen[def.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, def.ID)
		}
		seen[def.ID] = true

		if def.Tier < 1 {
			return fmt.Errorf("%w: item %s %s", ErrInvalidConfig, def.ID, ErrMsgInvalidTier)
		}
		if def.Quality < 0 {
			return fmt.Errorf("%w: item %s %s", ErrInvalidConfig, def.ID, ErrMsgNegativeQuality)
		}
		if !domain.ValidItemTypes[domain.ItemType(def.Type)] {
			return fmt.Errorf("%w: item %s has unknown type %q", ErrInvalidConfig, def.ID, def.Type)
		}
	}

	return nil
}

// LoadCatalog is the convenience path used by mains: load, validate, build.
func LoadCatalog(path string) (*Catalog, error) {
	loader := NewLoader()
	cfg, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	if err := loader.Validate(cfg); err != nil {
		return nil, err
	}
	return NewCatalog(cfg), nil
}

// tierPrefix matches the leading tier token of conventional identifiers,
// e.g. "T4_" in "T4_OAK_PLANK".
var tierPrefix = regexp.MustCompile(`^T\d+_`)

var titleCaser = cases.Title(language.English)

// DisplayNameFromID derives a display name from a conventional identifier
// when the config omits one: "T4_OAK_PLANK" becomes "Oak Plank".
func DisplayNameFromID(id string) string {
	name := tierPrefix.ReplaceAllString(id, "")
	name = strings.ReplaceAll(name, "_", " ")
	return titleCaser.String(strings.ToLower(name))
}
