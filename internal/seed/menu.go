package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"yayayum/internal/models"
	"yayayum/internal/validation"

	"gopkg.in/yaml.v3"
)

//go:embed menu.yml
var defaultMenu []byte

type menuFile struct {
	Dishes []menuDish `yaml:"dishes"`
}

type menuDish struct {
	Nr                  int      `yaml:"nr"`
	Name                string   `yaml:"name"`
	Description         string   `yaml:"description"`
	PriceKr             int      `yaml:"price_kr"`
	DietaryRestrictions []string `yaml:"dietary_restrictions"`
	Category            string   `yaml:"category"`
}

// DefaultMenu returns the embedded demo menu.
func DefaultMenu() ([]models.DishInput, error) {
	return LoadMenu(bytes.NewReader(defaultMenu))
}

// LoadMenuFile reads a menu from a YAML file on disk.
func LoadMenuFile(path string) ([]models.DishInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return LoadMenu(f)
}

// LoadMenu decodes a YAML menu and checks every entry the same way the API
// checks a dish payload. Unknown keys are rejected.
func LoadMenu(r io.Reader) ([]models.DishInput, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file menuFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("menu: empty document")
		}
		return nil, fmt.Errorf("menu: %w", err)
	}

	out := make([]models.DishInput, 0, len(file.Dishes))
	for i, d := range file.Dishes {
		restrictions := make(models.DietaryRestrictions, 0, len(d.DietaryRestrictions))
		for _, tag := range d.DietaryRestrictions {
			restrictions = append(restrictions, models.DietaryRestriction(tag))
		}
		in := models.DishInput{
			Nr:                  d.Nr,
			Name:                d.Name,
			Description:         d.Description,
			PriceKr:             d.PriceKr,
			DietaryRestrictions: restrictions,
			Category:            models.DishCategory(d.Category),
		}
		if err := validation.ValidateDishInput(in); err != nil {
			return nil, fmt.Errorf("menu: dish %d (%q): %w", i, d.Name, err)
		}
		out = append(out, in)
	}
	return out, nil
}
