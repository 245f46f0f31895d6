package user

import "time"

type Member struct {
	ID            int        `db:"id" json:"id"`
	Name          string     `db:"name" json:"name"`
	DateOfBirth   *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Gender        string     `db:"gender" json:"gender"`
	ContactDetail string     `db:"contact_detail" json:"contact_detail"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

type Admin struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type RegisterMemberRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=255" example:"Sam Lee"`
	DateOfBirth   string `json:"date_of_birth" example:"1990-04-12"`
	Gender        string `json:"gender" binding:"max=32" example:"female"`
	ContactDetail string `json:"contact_detail" binding:"required,email" example:"sam@example.com"`
}

type RegisterAdminRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255" example:"Alex"`
}
