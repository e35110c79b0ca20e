package catalog

import "zenhome-backend/internal/models"

// Catalog is the static materials library. It is populated once at
// startup and treated as read-only afterwards.
type Catalog struct {
	materials []models.Material
	byID      map[string]models.Material
}

// New builds a catalog from a fixed material list. Later entries with
// a duplicate ID are dropped so ID lookups stay unambiguous.
func New(materials []models.Material) *Catalog {
	c := &Catalog{
		byID: make(map[string]models.Material, len(materials)),
	}
	for _, m := range materials {
		if _, exists := c.byID[m.ID]; exists {
			continue
		}
		c.byID[m.ID] = m
		c.materials = append(c.materials, m)
	}
	return c
}

// Default returns the built-in materials library.
func Default() *Catalog {
	return New(seedMaterials)
}

// All returns every material in catalog order.
func (c *Catalog) All() []models.Material {
	return append([]models.Material(nil), c.materials...)
}

// Get looks a material up by ID. Callers must handle the missing case
// themselves; placed items and selections reference materials weakly.
func (c *Catalog) Get(id string) (models.Material, bool) {
	m, ok := c.byID[id]
	return m, ok
}

// ByCategory returns the materials in one category, in catalog order.
func (c *Catalog) ByCategory(cat models.Category) []models.Material {
	var out []models.Material
	for _, m := range c.materials {
		if m.Category == cat {
			out = append(out, m)
		}
	}
	return out
}

// Categories returns the distinct categories present, in first-seen
// order.
func (c *Catalog) Categories() []models.Category {
	seen := make(map[models.Category]bool)
	var out []models.Category
	for _, m := range c.materials {
		if !seen[m.Category] {
			seen[m.Category] = true
			out = append(out, m.Category)
		}
	}
	return out
}

// RoomTypes lists the room labels offered when creating a space.
var RoomTypes = []string{"living", "bedroom", "kitchen", "bathroom", "dining", "study"}

var seedMaterials = []models.Material{
	{
		ID:          "mat-1",
		Name:        "Nordic Oak Engineered Hardwood Flooring",
		Category:    models.CategoryFloor,
		Price:       458,
		Unit:        models.UnitArea,
		Image:       "https://images.unsplash.com/photo-1581428982868-e410dd047a90?w=400",
		Description: "E0 emission grade with a high wear rating.",
		Brand:       "Power Dekor",
		Spec:        "1210*165*15mm",
	},
	{
		ID:          "mat-2",
		Name:        "Calacatta Marble Porcelain Tile",
		Category:    models.CategoryFloor,
		Price:       288,
		Unit:        models.UnitArea,
		Image:       "https://images.unsplash.com/photo-1616486029423-aaa4789e8c9a?w=400",
		Description: "Full-glazed finish with continuous veining.",
		Brand:       "Marco Polo",
		Spec:        "800*800mm",
	},
	{
		ID:          "mat-3",
		Name:        "Linear Magnetic Track Lighting",
		Category:    models.CategoryLighting,
		Price:       120,
		Unit:        models.UnitLength,
		Image:       "https://images.unsplash.com/photo-1513506003901-1e6a229e2d15?w=400",
		Description: "4000K, high CRI, dimmable over the smart bus.",
		Brand:       "NVC Lighting",
		Spec:        "DC48V magnetic track",
	},
	{
		ID:          "mat-4",
		Name:        "Mineral Silicate Interior Wall Paint",
		Category:    models.CategoryWall,
		Price:       98,
		Unit:        models.UnitArea,
		Image:       "https://images.unsplash.com/photo-1562259949-e8e7689d7828?w=400",
		Description: "Breathable matte finish, zero-VOC formulation.",
		Brand:       "Keim",
		Spec:        "5L per bucket",
	},
	{
		ID:          "mat-5",
		Name:        "Italian Minimal Nubuck Leather Sofa",
		Category:    models.CategoryFurniture,
		Price:       12800,
		Unit:        models.UnitSet,
		Image:       "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=400",
		Description: "Down-filled seat, full-grain nubuck upholstery.",
		Brand:       "KUKA Home",
		Spec:        "2800*1050*850mm",
	},
	{
		ID:          "mat-6",
		Name:        "Wall-Hung Smart Toilet",
		Category:    models.CategoryBath,
		Price:       4600,
		Unit:        models.UnitCount,
		Image:       "https://images.unsplash.com/photo-1584622650111-993a426fbf0a?w=400",
		Description: "Concealed cistern, heated seat, auto flush.",
		Brand:       "TOTO",
		Spec:        "580*380*340mm",
	},
	{
		ID:          "struct-1",
		Name:        "Standard Single-Leaf Interior Door",
		Category:    models.CategoryStructural,
		Price:       2200,
		Unit:        models.UnitSet,
		Image:       "https://images.unsplash.com/photo-1517646331032-9e8563c520a1?w=400",
		Description: "Engineered wood core with a silent magnetic latch.",
		Brand:       "TATA Doors",
		Spec:        "2100*900mm",
	},
	{
		ID:          "struct-2",
		Name:        "Slim-Frame Floor-to-Ceiling Window",
		Category:    models.CategoryStructural,
		Price:       1500,
		Unit:        models.UnitArea,
		Image:       "https://images.unsplash.com/photo-1509644851169-2acc08aa25b5?w=400",
		Description: "Thermal-break aluminium, triple glazing.",
		Brand:       "Custom system windows",
		Spec:        "made to measure",
	},
}
