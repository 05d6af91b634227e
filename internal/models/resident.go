package models

// Resident represents a household registered with the association.
type Resident struct {
	// ID is the unique identifier for the resident (UUID format), immutable.
	ID string `json:"id"`

	// Name is the head-of-household display name. Required.
	Name string `json:"name"`

	// Address is the street address within the neighborhood.
	Address string `json:"address"`

	// Phone is a contact number.
	Phone string `json:"phone"`
}

// ResidentUpdate carries a partial update; nil fields are left untouched.
type ResidentUpdate struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

// Apply copies the supplied fields onto r, preserving its ID.
func (u ResidentUpdate) Apply(r *Resident) {
	if u.Name != nil {
		r.Name = *u.Name
	}
	if u.Address != nil {
		r.Address = *u.Address
	}
	if u.Phone != nil {
		r.Phone = *u.Phone
	}
}
