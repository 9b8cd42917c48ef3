package model

// Testimonial is one quote shown in the marquee.
type Testimonial struct {
	Quote  string `yaml:"quote" validate:"required"`
	Author string `yaml:"author" validate:"required"`
}

// MediaRef points at an image or animation that can be expanded in the lightbox.
type MediaRef struct {
	Path string `yaml:"path" validate:"required"` // file path, relative to the catalog
	Alt  string `yaml:"alt"`                      // shown when the file can't be rendered
}

// Step is one entry in the "How it works" walkthrough.
type Step struct {
	Title string   `yaml:"title" validate:"required"`
	Text  string   `yaml:"text" validate:"required"`
	Media MediaRef `yaml:"media"`
}

// Hero is the headline block at the top of the page.
type Hero struct {
	Title     string `yaml:"title"`
	Highlight string `yaml:"highlight"`
	Tagline   string `yaml:"tagline"`
}

// Footer holds the two footer captions.
type Footer struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// Catalog is the static page content supplied to the landing page.
type Catalog struct {
	Product      string        `yaml:"product" validate:"required"`
	Repository   string        `yaml:"repository" validate:"omitempty,url"`
	Hero         Hero          `yaml:"hero"`
	Steps        []Step        `yaml:"steps" validate:"dive"`
	Testimonials []Testimonial `yaml:"testimonials" validate:"dive"`
	Footer       Footer        `yaml:"footer"`
}

// Media returns every media reference usable as a lightbox target, in page order.
func (c Catalog) Media() []MediaRef {
	refs := make([]MediaRef, 0, len(c.Steps))
	for _, s := range c.Steps {
		refs = append(refs, s.Media)
	}
	return refs
}
