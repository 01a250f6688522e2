package catalog

import (
	"bytes"
	"embed"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/osse101/DofusPlanner_Go/internal/domain"
	"github.com/osse101/DofusPlanner_Go/internal/validation"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

// Sentinel errors for catalog loading
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrDuplicateItem = errors.New("duplicate item")
)

// ItemDef is an item entry of the JSON catalog
type ItemDef struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Level    int    `json:"level"`
	ImageURL string `json:"imageUrl"`
}

// RecipeDef is a recipe entry as stored on disk, with its ingredients split
// across three parallel arrays.
type RecipeDef struct {
	HasRecipe       bool     `json:"hasRecipe"`
	Job             string   `json:"job"`
	JobLevel        int      `json:"jobLevel"`
	IngredientNames []string `json:"ingredientNames"`
	IngredientIDs   []int    `json:"ingredientIds"`
	Quantities      []int    `json:"quantities"`
}

// JobDef is a job entry of the jobs file
type JobDef struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// Loader reads the static reference data
type Loader interface {
	LoadItems(name string) ([]domain.CatalogItem, error)
	LoadRecipes(name string) (domain.RecipeBook, error)
	LoadJobs(name string) ([]domain.Job, error)
}

type loader struct {
	fsys            fs.FS
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader reading files from fsys
func NewLoader(fsys fs.FS) Loader {
	schemas, _ := fs.Sub(schemaFiles, "schemas")
	return &loader{
		fsys:            fsys,
		schemaValidator: validation.NewSchemaValidator(schemas, fsys),
	}
}

// LoadItems reads the item catalog. JSON and CSV files are supported.
func (l *loader) LoadItems(name string) ([]domain.CatalogItem, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFileFailed, name, err)
	}

	var items []domain.CatalogItem
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		items, err = l.parseItemsJSON(name, data)
	case ".csv":
		items, err = parseItemsCSV(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: "+ErrMsgUnsupportedExt, ErrInvalidConfig, path.Ext(name))
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgParseFileFailed, name, err)
	}

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if seen[item.Name] {
			return nil, fmt.Errorf("%w: "+ErrMsgDuplicateItem, ErrDuplicateItem, item.Name)
		}
		seen[item.Name] = true
	}

	return items, nil
}

func (l *loader) parseItemsJSON(name string, data []byte) ([]domain.CatalogItem, error) {
	if err := l.schemaValidator.ValidateBytes(data, SchemaItems); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, name, err)
	}

	var defs []ItemDef
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, err
	}

	items := make([]domain.CatalogItem, 0, len(defs))
	for _, d := range defs {
		items = append(items, domain.CatalogItem{
			Category: d.Category,
			Name:     d.Name,
			Type:     d.Type,
			Level:    d.Level,
			ImageURL: d.ImageURL,
		})
	}
	return items, nil
}

func parseItemsCSV(r io.Reader) ([]domain.CatalogItem, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	if len(header) < len(itemCSVHeader) {
		return nil, fmt.Errorf("%w: "+ErrMsgBadCSVHeader, ErrInvalidConfig, header)
	}
	for i, col := range itemCSVHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), col) {
			return nil, fmt.Errorf("%w: "+ErrMsgBadCSVHeader, ErrInvalidConfig, header)
		}
	}

	var items []domain.CatalogItem
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, err
		}

		level := 0
		if raw := strings.TrimSpace(record[3]); raw != "" {
			level, err = strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: "+ErrMsgBadCSVLevel, ErrInvalidConfig, line, raw)
			}
		}

		items = append(items, domain.CatalogItem{
			Category: strings.TrimSpace(record[0]),
			Name:     strings.TrimSpace(record[1]),
			Type:     strings.TrimSpace(record[2]),
			Level:    level,
			ImageURL: strings.TrimSpace(record[4]),
		})
	}
	return items, nil
}

// LoadRecipes reads the recipe table and converts each entry into tagged
// ingredient records. Entries whose arrays disagree in length are rejected.
func (l *loader) LoadRecipes(name string) (domain.RecipeBook, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFileFailed, name, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, SchemaRecipes); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, name, err)
	}

	var defs map[string]RecipeDef
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFileFailed, name, err)
	}

	book := make(domain.RecipeBook, len(defs))
	for itemName, def := range defs {
		recipe, err := toRecipe(itemName, def)
		if err != nil {
			return nil, err
		}
		book[itemName] = recipe
	}
	return book, nil
}

func toRecipe(itemName string, def RecipeDef) (domain.Recipe, error) {
	n := len(def.IngredientNames)
	if len(def.IngredientIDs) != n || len(def.Quantities) != n {
		return domain.Recipe{}, fmt.Errorf("%w: "+ErrMsgMisalignedArrays, domain.ErrInvalidRecipe,
			itemName, n, len(def.IngredientIDs), len(def.Quantities))
	}

	ingredients := make([]domain.Ingredient, 0, n)
	for i := 0; i < n; i++ {
		ingredients = append(ingredients, domain.Ingredient{
			ID:              def.IngredientIDs[i],
			Name:            def.IngredientNames[i],
			QuantityPerUnit: def.Quantities[i],
		})
	}

	return domain.Recipe{
		ItemName:    itemName,
		HasRecipe:   def.HasRecipe,
		Job:         def.Job,
		JobLevel:    def.JobLevel,
		Ingredients: ingredients,
	}, nil
}

// LoadJobs reads the jobs file. A missing file is not an error: jobs are
// then derived from the recipes alone.
func (l *loader) LoadJobs(name string) ([]domain.Job, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFileFailed, name, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, SchemaJobs); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, name, err)
	}

	var defs []JobDef
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFileFailed, name, err)
	}

	jobs := make([]domain.Job, 0, len(defs))
	for _, d := range defs {
		jobs = append(jobs, domain.Job{Name: d.Name, ImageURL: d.ImageURL})
	}
	return jobs, nil
}
