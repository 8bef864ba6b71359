package models

// Contestant represents a contest participant, identified externally by phone
type Contestant struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"not null;index"`
	Age   int    `json:"age" gorm:"not null"`
	Phone int64  `json:"phone" gorm:"not null;uniqueIndex"`
}

// TableName pins the table name used by GORM
func (Contestant) TableName() string {
	return "contestant"
}

// Public returns the client-facing view of the record
func (c *Contestant) Public() ContestantPublic {
	return ContestantPublic{
		Name:  c.Name,
		Age:   c.Age,
		Phone: c.Phone,
	}
}

// ContestantPublic is the view returned to clients after a write; it omits
// the internal ID.
type ContestantPublic struct {
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Phone int64  `json:"phone"`
}

// CreateContestantRequest represents a contestant creation request.
// Pointers distinguish a missing field from a zero value.
type CreateContestantRequest struct {
	Name  *string `json:"name" binding:"required"`
	Age   *int    `json:"age" binding:"required"`
	Phone *int64  `json:"phone" binding:"required"`
}

// ToContestant converts a validated request into a new record
func (r *CreateContestantRequest) ToContestant() *Contestant {
	c := &Contestant{}
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Age != nil {
		c.Age = *r.Age
	}
	if r.Phone != nil {
		c.Phone = *r.Phone
	}
	return c
}

// ContestantUpdate represents a partial update. Nil fields are left as is.
type ContestantUpdate struct {
	Name *string `json:"name"`
	Age  *int    `json:"age"`
}

// IsEmpty reports whether the update changes nothing
func (u ContestantUpdate) IsEmpty() bool {
	return u.Name == nil && u.Age == nil
}

// Columns returns the column assignments for the supplied fields
func (u ContestantUpdate) Columns() map[string]interface{} {
	cols := make(map[string]interface{}, 2)
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Age != nil {
		cols["age"] = *u.Age
	}
	return cols
}

// ApplyTo copies the supplied fields onto c
func (u ContestantUpdate) ApplyTo(c *Contestant) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Age != nil {
		c.Age = *u.Age
	}
}
