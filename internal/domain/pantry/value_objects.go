package pantry

// Value Objects - Immutable objects that describe aspects of the domain

// ItemKind discriminates the two collections sharing the StockItem shape.
type ItemKind string

const (
	KindPantry   ItemKind = "pantry"
	KindShopping ItemKind = "shopping"
)

// Unit is a free-form measurement label. It is not validated against a
// fixed unit system; only the discrete-count subset below carries meaning
// for the low-stock fallback.
type Unit string

const (
	// Continuous units
	UnitGram       Unit = "g"
	UnitKilogram   Unit = "kg"
	UnitMilliliter Unit = "ml"
	UnitLiter      Unit = "l"
	UnitOunce      Unit = "oz"
	UnitPound      Unit = "lb"
	UnitCup        Unit = "cup"

	// Discrete-count units
	UnitPiece  Unit = "piece"
	UnitPack   Unit = "pack"
	UnitBottle Unit = "bottle"
	UnitCan    Unit = "can"
	UnitBox    Unit = "box"
	UnitBag    Unit = "bag"
	UnitCarton Unit = "carton"
	UnitDozen  Unit = "dozen"
	UnitLoaf   Unit = "loaf"
	UnitBunch  Unit = "bunch"
)

// discreteUnits lists the count-style units eligible for the quantity < 2
// low-stock fallback. Continuous units never trigger the fallback.
var discreteUnits = map[Unit]bool{
	UnitPiece:  true,
	UnitPack:   true,
	UnitBottle: true,
	UnitCan:    true,
	UnitBox:    true,
	UnitBag:    true,
	UnitCarton: true,
	UnitDozen:  true,
	UnitLoaf:   true,
	UnitBunch:  true,
}

// IsDiscrete reports whether the unit counts whole things rather than a
// measured amount.
func (u Unit) IsDiscrete() bool {
	return discreteUnits[u]
}

// Priority ranks shopping-list entries.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Validate checks the priority label. The empty value is allowed and
// means "not set".
func (p Priority) Validate() error {
	switch p {
	case "", PriorityLow, PriorityMedium, PriorityHigh:
		return nil
	}
	return ErrInvalidPriority
}

// Rank maps the priority to its fixed severity. Unset priority ranks
// below low so it sorts last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Default category labels used when the caller supplies none. The
// category set is open; these are only seed values.
const (
	CategoryOther = "Other"

	// CategoryAll is the neutral filter value that disables category
	// filtering in a query.
	CategoryAll = "All"
)
