package models

// Category classifies a catalog material. The set is fixed; the
// palette and the 3D renderer both key off it.
type Category string

const (
	CategoryFloor      Category = "floor"
	CategoryWall       Category = "wall"
	CategoryLighting   Category = "lighting"
	CategoryFurniture  Category = "furniture"
	CategoryBath       Category = "bath"
	CategoryStructural Category = "structural"
)

// Unit is the pricing unit of a material. Area-priced materials are
// billed against total project floor area; everything else is flat.
type Unit string

const (
	UnitArea   Unit = "sqm" // per square meter
	UnitLength Unit = "m"   // per running meter
	UnitCount  Unit = "pc"  // per piece
	UnitSet    Unit = "set" // per set
)

// Material is an immutable catalog entry. Loaded once at startup and
// never mutated afterwards; everything else references it by ID only.
type Material struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"`
	Unit        Unit     `json:"unit"`
	Image       string   `json:"image"`
	Description string   `json:"description,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	Spec        string   `json:"spec,omitempty"`
}

// PricedByArea reports whether quantity for this material is derived
// from total floor area rather than a flat count.
func (m Material) PricedByArea() bool {
	return m.Unit == UnitArea
}
