package models

// AnimalKind distinguishes the two kinds of animal a record can target.
type AnimalKind string

const (
	AnimalKindBreedingStock AnimalKind = "breeding_stock"
	AnimalKindOffspring     AnimalKind = "offspring"
)

// AnimalStatus is the lifecycle status shared by breeding stock and offspring.
type AnimalStatus string

const (
	AnimalStatusActive   AnimalStatus = "active"
	AnimalStatusInactive AnimalStatus = "inactive"
)

// AnimalRef points a record at exactly one animal. Only the id column that
// matches TargetKind may be set.
type AnimalRef struct {
	TargetKind      AnimalKind `gorm:"size:20;not null;index" json:"target_kind"`
	BreedingStockID *string    `gorm:"type:uuid;index" json:"breeding_stock_id,omitempty"`
	OffspringID     *string    `gorm:"type:uuid;index" json:"offspring_id,omitempty"`
}

// NewAnimalRef builds a reference for the given kind and id.
func NewAnimalRef(kind AnimalKind, id string) AnimalRef {
	ref := AnimalRef{TargetKind: kind}
	switch kind {
	case AnimalKindBreedingStock:
		ref.BreedingStockID = &id
	case AnimalKindOffspring:
		ref.OffspringID = &id
	}
	return ref
}

// Valid reports whether exactly one id is set and it matches TargetKind.
func (r AnimalRef) Valid() bool {
	stock := r.BreedingStockID != nil && *r.BreedingStockID != ""
	offspring := r.OffspringID != nil && *r.OffspringID != ""
	switch r.TargetKind {
	case AnimalKindBreedingStock:
		return stock && !offspring
	case AnimalKindOffspring:
		return offspring && !stock
	}
	return false
}

// TargetID returns the id of the referenced animal.
func (r AnimalRef) TargetID() string {
	if r.TargetKind == AnimalKindBreedingStock && r.BreedingStockID != nil {
		return *r.BreedingStockID
	}
	if r.OffspringID != nil {
		return *r.OffspringID
	}
	return ""
}

// Column is the foreign key column holding the target id.
func (r AnimalRef) Column() string {
	return TargetColumn(r.TargetKind)
}

// TargetColumn maps an animal kind to its foreign key column name.
func TargetColumn(kind AnimalKind) string {
	if kind == AnimalKindBreedingStock {
		return "breeding_stock_id"
	}
	return "offspring_id"
}
