// Package cards generates boarding card content in pluggable formats. A
// generator receives a flat field map built by the flight aggregate:
//
//	gate             - departure gate number
//	airline          - name of the airline
//	embarkation_name - name of the embarkation airport
//	embarkation      - 3-letter IATA code for the embarkation airport
//	departs          - local departure time, 12-hour clock
//	destination_name - name of the destination airport
//	destination      - 3-letter IATA code for the destination airport
//	arrives          - local arrival time, 12-hour clock
//	name             - passenger name
//	seat_number      - seat number
//
// Generators are registered explicitly against a format tag; there is no
// runtime plugin discovery.
package cards

import "fmt"

// GeneratorFunc renders one boarding card from its field map.
type GeneratorFunc func(fields map[string]string) ([]byte, error)

// Registry maps format tags ("html", "pdf", ...) to their generators. It
// is built once at process start and injected wherever cards are produced.
type Registry struct {
	generators map[string]GeneratorFunc
}

func NewRegistry() *Registry {
	return &Registry{generators: make(map[string]GeneratorFunc)}
}

func (r *Registry) Register(format string, generator GeneratorFunc) {
	r.generators[format] = generator
}

// Resolve returns the generator registered for the format tag.
func (r *Registry) Resolve(format string) (GeneratorFunc, error) {
	const op = "cards.Registry.Resolve"

	generator, ok := r.generators[format]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, MissingGeneratorError{Format: format})
	}

	return generator, nil
}

// Default returns a registry with every built-in generator registered.
func Default() *Registry {
	r := NewRegistry()
	r.Register("html", GenerateHTML)
	r.Register("txt", GenerateText)
	r.Register("pdf", GeneratePDF)
	return r
}

type MissingGeneratorError struct {
	Format string
}

func (e MissingGeneratorError) Error() string {
	return fmt.Sprintf("boarding card generator not registered for format %q", e.Format)
}
