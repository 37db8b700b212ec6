package keymap

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/robgonnella/keycombo/internal/exception"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// KeymapModel represents a keymap stored in the sqlite database
type KeymapModel struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex"`
	Bindings  datatypes.JSON
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName implements gorm's Tabler interface
func (KeymapModel) TableName() string {
	return "keymaps"
}

// SqliteRepo is our repo implementation for sqlite
type SqliteRepo struct {
	db *gorm.DB
}

// NewSqliteRepo returns a new keymap sqlite repo
func NewSqliteRepo(db *gorm.DB) *SqliteRepo {
	return &SqliteRepo{
		db: db,
	}
}

// Get returns a keymap from the db
func (r *SqliteRepo) Get(id string) (*Keymap, error) {
	if id == "" {
		return nil, errors.New("keymap id cannot be empty")
	}

	model := KeymapModel{}

	if result := r.db.First(&model, "id = ?", id); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, result.Error
	}

	return modelToKeymap(&model)
}

// GetByName returns a keymap from the db by its unique name
func (r *SqliteRepo) GetByName(name string) (*Keymap, error) {
	if name == "" {
		return nil, errors.New("keymap name cannot be empty")
	}

	model := KeymapModel{}

	if result := r.db.First(&model, "name = ?", name); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, result.Error
	}

	return modelToKeymap(&model)
}

// GetAll returns all keymaps in db ordered by name
func (r *SqliteRepo) GetAll() ([]*Keymap, error) {
	models := []KeymapModel{}

	if result := r.db.Order("name").Find(&models); result.Error != nil {
		return nil, result.Error
	}

	keymaps := []*Keymap{}

	for _, m := range models {
		km, err := modelToKeymap(&m)

		if err != nil {
			return nil, err
		}

		keymaps = append(keymaps, km)
	}

	return keymaps, nil
}

// Create creates a new keymap in db
func (r *SqliteRepo) Create(km *Keymap) (*Keymap, error) {
	if km.Name == "" {
		return nil, errors.New("keymap name cannot be empty")
	}

	model, err := keymapToModel(km)

	if err != nil {
		return nil, err
	}

	if model.ID == "" {
		model.ID = uuid.New().String()
	}

	if result := r.db.Create(model); result.Error != nil {
		return nil, result.Error
	}

	return modelToKeymap(model)
}

// Update updates a keymap in db
func (r *SqliteRepo) Update(km *Keymap) (*Keymap, error) {
	if km.ID == "" {
		return nil, errors.New("keymap ID cannot be empty")
	}

	existing := KeymapModel{}

	if result := r.db.First(&existing, "id = ?", km.ID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, result.Error
	}

	model, err := keymapToModel(km)

	if err != nil {
		return nil, err
	}

	model.CreatedAt = existing.CreatedAt

	if result := r.db.Save(model); result.Error != nil {
		return nil, result.Error
	}

	return modelToKeymap(model)
}

// Delete deletes a keymap from db
func (r *SqliteRepo) Delete(id string) error {
	if id == "" {
		return errors.New("keymap id cannot be empty")
	}

	result := r.db.Delete(&KeymapModel{ID: id})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return exception.ErrRecordNotFound
	}

	return nil
}

// helpers
func modelToKeymap(model *KeymapModel) (*Keymap, error) {
	bindings := map[string][]string{}

	if err := json.Unmarshal([]byte(model.Bindings.String()), &bindings); err != nil {
		return nil, err
	}

	return &Keymap{
		ID:       model.ID,
		Name:     model.Name,
		Bindings: bindings,
	}, nil
}

func keymapToModel(km *Keymap) (*KeymapModel, error) {
	bindings := km.Bindings

	if bindings == nil {
		bindings = map[string][]string{}
	}

	bindingsBytes, err := json.Marshal(bindings)

	if err != nil {
		return nil, err
	}

	return &KeymapModel{
		ID:       km.ID,
		Name:     km.Name,
		Bindings: datatypes.JSON(bindingsBytes),
	}, nil
}
