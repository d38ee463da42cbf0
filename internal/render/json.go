package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jakoblorz/go-portfolio/internal/models"
)

// JSON writes the portfolio as an indented JSON document
func JSON(w io.Writer, p *models.Portfolio) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("failed to encode portfolio: %w", err)
	}
	return nil
}
