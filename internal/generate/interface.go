package generate

// Generator writes generated Go source for a keymap
type Generator interface {
	Generate(data Data) error
}
