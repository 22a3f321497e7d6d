package cards

import (
	"bytes"
	"fmt"
	"html/template"

	_ "embed"
)

//go:embed templates/boarding_card.html
var boardingCardHTML string

var htmlTemplate = template.Must(template.New("boarding_card").Parse(boardingCardHTML))

// GenerateHTML renders the boarding card as a standalone HTML document.
func GenerateHTML(fields map[string]string) ([]byte, error) {
	const op = "cards.GenerateHTML"

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, fields); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}
