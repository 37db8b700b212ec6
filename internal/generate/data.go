package generate

import (
	"errors"
	"fmt"
	"go/token"
	"sort"
	"strings"
	"unicode"

	"github.com/robgonnella/keycombo/internal/exception"
	"github.com/robgonnella/keycombo/internal/keymap"
	"github.com/robgonnella/keycombo/pkg/combo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ImportPath is the import path of the combo package referenced by
// generated files
const ImportPath = "github.com/robgonnella/keycombo/pkg/combo"

// Key is one binding of an action
type Key struct {
	Spec      string
	Canonical string
	Literal   string
}

// Action is a bound action rendered as a package level variable
type Action struct {
	Action string
	Ident  string
	Keys   []Key
}

// Data is the input of the keymap template
type Data struct {
	Generator  string
	Package    string
	Source     string
	ImportPath string
	Actions    []Action
}

// BuildData parses every binding of km. Parse errors and identifier
// collisions are joined into a single error.
func BuildData(km *keymap.Keymap, pkg, source string) (Data, error) {
	if !token.IsIdentifier(pkg) {
		return Data{}, fmt.Errorf("invalid package name %q", pkg)
	}

	data := Data{
		Generator:  "keycombo gen",
		Package:    pkg,
		Source:     source,
		ImportPath: ImportPath,
		Actions:    []Action{},
	}

	actions := make([]string, 0, len(km.Bindings))

	for action := range km.Bindings {
		actions = append(actions, action)
	}

	sort.Strings(actions)

	errs := []error{}
	idents := map[string]string{}

	for _, action := range actions {
		ident := Identifier(action)

		if ident == "" {
			errs = append(errs, fmt.Errorf("%w: action %q has no usable identifier", exception.ErrInvalidKeymap, action))
			continue
		}

		if other, ok := idents[ident]; ok {
			errs = append(errs, fmt.Errorf(
				"%w: actions %q and %q both generate %s",
				exception.ErrInvalidKeymap,
				other,
				action,
				ident,
			))
			continue
		}

		idents[ident] = action

		a := Action{Action: action, Ident: ident, Keys: []Key{}}

		for _, spec := range km.Bindings[action] {
			k, err := combo.Parse(spec)

			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %s: %w", exception.ErrInvalidKeymap, action, err))
				continue
			}

			a.Keys = append(a.Keys, Key{
				Spec:      spec,
				Canonical: k.String(),
				Literal:   fmt.Sprintf("%#v", k),
			})
		}

		data.Actions = append(data.Actions, a)
	}

	if len(errs) > 0 {
		return Data{}, errors.Join(errs...)
	}

	return data, nil
}

// Identifier converts an action name such as "move-up" or "move_up" into
// an exported Go identifier ("MoveUp"). Names starting with a digit get a
// "Key" prefix. An empty string means no identifier could be derived.
func Identifier(action string) string {
	words := strings.FieldsFunc(action, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	title := cases.Title(language.Und, cases.NoLower)

	var sb strings.Builder

	for _, w := range words {
		sb.WriteString(title.String(w))
	}

	ident := sb.String()

	if ident == "" {
		return ""
	}

	if r := []rune(ident)[0]; unicode.IsDigit(r) || !unicode.IsUpper(r) {
		ident = "Key" + ident
	}

	return ident
}
