// Package content loads the static page content: hero copy, walkthrough steps,
// testimonials and the media they reference.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/amishk599/jobfinder/internal/model"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var validate = validator.New()

// Default returns the catalog compiled into the binary. Media paths stay
// relative, so they resolve against the working directory.
func Default() (model.Catalog, error) {
	return parse(defaultCatalog, "")
}

// Load reads a catalog from path. Relative media paths are resolved against
// the catalog's directory. An empty path returns Default().
func Load(path string) (model.Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("read content: %w", err)
	}
	return parse(data, filepath.Dir(path))
}

func parse(data []byte, baseDir string) (model.Catalog, error) {
	var c model.Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return model.Catalog{}, fmt.Errorf("parse content: %w", err)
	}
	if err := validate.Struct(c); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) {
			return model.Catalog{}, fmt.Errorf("content: %s failed %q", ves[0].Namespace(), ves[0].Tag())
		}
		return model.Catalog{}, fmt.Errorf("validate content: %w", err)
	}

	if baseDir != "" {
		for i := range c.Steps {
			p := c.Steps[i].Media.Path
			if !filepath.IsAbs(p) {
				c.Steps[i].Media.Path = filepath.Join(baseDir, p)
			}
		}
	}
	for i := range c.Steps {
		if c.Steps[i].Media.Alt == "" {
			c.Steps[i].Media.Alt = c.Steps[i].Title
		}
	}
	return c, nil
}
