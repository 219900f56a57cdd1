package catalog

// Product is one catalog entry. The catalog is static reference data compiled
// into the binary; nothing in the storefront mutates it.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Material    string  `json:"material"`
	Gemstone    string  `json:"gemstone,omitempty"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Featured    bool    `json:"featured"`
	InStock     bool    `json:"in_stock"`
}

// ConsultationType is a bookable service offering (custom design, repair,
// private viewing, ...) with its own duration and base price.
type ConsultationType struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	DurationMinutes int      `json:"duration_minutes"`
	BasePrice       float64  `json:"base_price"`
	Features        []string `json:"features,omitempty"`
	Popular         bool     `json:"popular"`
}

const (
	CategoryRings     = "rings"
	CategoryNecklaces = "necklaces"
	CategoryEarrings  = "earrings"
	CategoryBracelets = "bracelets"
)

// Catalog bundles the static product and consultation data behind lookup
// helpers so callers never index the raw slices.
type Catalog struct {
	products      []Product
	consultations []ConsultationType
}

func New(products []Product, consultations []ConsultationType) *Catalog {
	return &Catalog{products: products, consultations: consultations}
}

// Default returns the catalog shipped with the storefront.
func Default() *Catalog {
	return New(products, consultationTypes)
}

func (c *Catalog) Products() []Product {
	return c.products
}

func (c *Catalog) Consultations() []ConsultationType {
	return c.consultations
}

func (c *Catalog) Product(id string) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (c *Catalog) Consultation(id string) (ConsultationType, bool) {
	for _, ct := range c.consultations {
		if ct.ID == id {
			return ct, true
		}
	}
	return ConsultationType{}, false
}
