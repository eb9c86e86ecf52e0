// Package entities contains core business entities.
package entities

// Team groups users; Members keeps the order the backend returned them in.
type Team struct {
	ID      int64
	Name    string
	Members []User
}

// Clone returns a copy of the team that does not share the members slice.
func (t Team) Clone() Team {
	members := make([]User, len(t.Members))
	copy(members, t.Members)
	t.Members = members
	return t
}
