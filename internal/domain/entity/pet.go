package entity

// Pet is the slice of a pet profile the reactions service reads from the pet store.
type Pet struct {
	ID            string `bson:"_id,omitempty" json:"id"`
	ResponsibleID string `bson:"responsible_id" json:"responsible_id"`
	Name          string `bson:"name" json:"name"`
}

// IsOwnedBy reports whether the pet belongs to the given responsible.
func (p *Pet) IsOwnedBy(responsibleID string) bool {
	return p != nil && responsibleID != "" && p.ResponsibleID == responsibleID
}
