package equipment

import "time"

const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusClosed     = "closed"
)

// Maintenance is one equipment operation an admin logged, e.g. a broken
// treadmill belt, tracked until it is closed.
type Maintenance struct {
	ID        int       `db:"id" json:"id"`
	AdminID   int       `db:"admin_id" json:"admin_id"`
	Operation string    `db:"operation" json:"operation"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type CreateMaintenanceRequest struct {
	Operation string `json:"operation" binding:"required,min=1,max=100" example:"Replace treadmill 3 belt"`
	Status    string `json:"status" binding:"omitempty,oneof=open in_progress closed" example:"open"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open in_progress closed" example:"closed"`
}
