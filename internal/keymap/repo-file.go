package keymap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/robgonnella/keycombo/internal/exception"
	"gopkg.in/yaml.v3"
)

// FileRepo reads and writes a single keymap file. The encoding is chosen
// from the file extension: .yaml/.yml, .json or .toml.
type FileRepo struct {
	path string
	mux  sync.Mutex
}

// NewFileRepo returns a new repo for the keymap file at path
func NewFileRepo(path string) *FileRepo {
	return &FileRepo{
		path: path,
		mux:  sync.Mutex{},
	}
}

// Path returns the path of the keymap file
func (r *FileRepo) Path() string {
	return r.path
}

// Load reads and decodes the keymap file. A keymap without a name is named
// after the file.
func (r *FileRepo) Load() (*Keymap, error) {
	r.mux.Lock()
	defer r.mux.Unlock()

	data, err := os.ReadFile(r.path)

	if err != nil {
		return nil, err
	}

	km := &Keymap{}

	switch ext := fileExt(r.path); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, km)
	case ".json":
		err = json.Unmarshal(data, km)
	case ".toml":
		err = toml.Unmarshal(data, km)
	default:
		return nil, fmt.Errorf("%w: %q", exception.ErrUnsupportedFormat, ext)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.path, err)
	}

	if km.Name == "" {
		km.Name = strings.TrimSuffix(filepath.Base(r.path), filepath.Ext(r.path))
	}

	if km.Bindings == nil {
		km.Bindings = map[string][]string{}
	}

	return km, nil
}

// Save encodes km and writes it to the keymap file
func (r *FileRepo) Save(km *Keymap) error {
	r.mux.Lock()
	defer r.mux.Unlock()

	var data []byte
	var err error

	switch ext := fileExt(r.path); ext {
	case ".yaml", ".yml":
		buf := bytes.Buffer{}
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err = encoder.Encode(km); err == nil {
			err = encoder.Close()
		}
		data = buf.Bytes()
	case ".json":
		data, err = json.MarshalIndent(km, "", "\t")
	case ".toml":
		data, err = toml.Marshal(km)
	default:
		return fmt.Errorf("%w: %q", exception.ErrUnsupportedFormat, ext)
	}

	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return err
	}

	return os.WriteFile(r.path, data, 0644)
}

func fileExt(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
