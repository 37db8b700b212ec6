package keymap

//go:generate mockgen -destination=../mock/keymap/mock_keymap.go -package=mock_keymap . Repo

// Repo interface representing access to stored keymaps
type Repo interface {
	Get(id string) (*Keymap, error)
	GetByName(name string) (*Keymap, error)
	GetAll() ([]*Keymap, error)
	Create(km *Keymap) (*Keymap, error)
	Update(km *Keymap) (*Keymap, error)
	Delete(id string) error
}

// Service interface for manipulating and resolving keymaps
type Service interface {
	Get(id string) (*Keymap, error)
	GetByName(name string) (*Keymap, error)
	GetAll() ([]*Keymap, error)
	Create(km *Keymap) (*Keymap, error)
	Update(km *Keymap) (*Keymap, error)
	Delete(id string) error
	Import(path string) (*Keymap, error)
	Resolve(name string) (*Bindings, error)
}
