package keymap

import (
	"errors"

	"github.com/robgonnella/keycombo/internal/exception"
	"github.com/robgonnella/keycombo/internal/logger"
	"github.com/robgonnella/keycombo/pkg/combo"
)

// KeymapService implements the Service interface on top of a Repo
type KeymapService struct {
	repo Repo
	log  logger.Logger
}

// NewKeymapService returns a new instance of KeymapService
func NewKeymapService(repo Repo) *KeymapService {
	return &KeymapService{
		repo: repo,
		log:  logger.New(),
	}
}

// Get returns the keymap with id
func (s *KeymapService) Get(id string) (*Keymap, error) {
	return s.repo.Get(id)
}

// GetByName returns the keymap named name
func (s *KeymapService) GetByName(name string) (*Keymap, error) {
	return s.repo.GetByName(name)
}

// GetAll returns all stored keymaps
func (s *KeymapService) GetAll() ([]*Keymap, error) {
	return s.repo.GetAll()
}

// Create validates and stores a new keymap
func (s *KeymapService) Create(km *Keymap) (*Keymap, error) {
	if _, err := Compile(km); err != nil {
		return nil, err
	}

	return s.repo.Create(km)
}

// Update validates and stores an existing keymap
func (s *KeymapService) Update(km *Keymap) (*Keymap, error) {
	if _, err := Compile(km); err != nil {
		return nil, err
	}

	return s.repo.Update(km)
}

// Delete removes the keymap with id
func (s *KeymapService) Delete(id string) error {
	return s.repo.Delete(id)
}

// Import loads a keymap file and stores it, replacing any stored keymap
// with the same name
func (s *KeymapService) Import(path string) (*Keymap, error) {
	km, err := NewFileRepo(path).Load()

	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByName(km.Name)

	if err != nil {
		if !errors.Is(err, exception.ErrRecordNotFound) {
			return nil, err
		}

		s.log.Debug().Str("name", km.Name).Str("path", path).Msg("importing new keymap")

		km.ID = ""

		return s.Create(km)
	}

	s.log.Debug().Str("name", km.Name).Str("path", path).Msg("replacing keymap")

	km.ID = existing.ID

	return s.Update(km)
}

// Resolve returns the compiled bindings of the keymap named name
func (s *KeymapService) Resolve(name string) (*Bindings, error) {
	km, err := s.repo.GetByName(name)

	if err != nil {
		return nil, err
	}

	bindings, err := Compile(km)

	if err != nil {
		return nil, err
	}

	for _, c := range DetectConflicts(bindings) {
		s.log.Warn().Str("keymap", name).Msg(c.Message(combo.StandardFormat))
	}

	return bindings, nil
}
