package domain

import "time"

// Menu is a top-level navigation node. RoleIDs is the edge set of roles that
// may see the menu; Order drives ascending presentation order.
type Menu struct {
	ID          string    `json:"id"`
	Active      bool      `json:"active"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatedByID string    `json:"created_by_id,omitempty"`
	UpdatedByID string    `json:"updated_by_id,omitempty"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon,omitempty"`
	Order       int       `json:"order"`
	RoleIDs     []string  `json:"role_ids,omitempty"`
}

// Capabilities are the fine-grained flags a menu item grants on its linked
// module.
type Capabilities struct {
	Create     bool `json:"create" bson:"create"`
	Read       bool `json:"read" bson:"read"`
	Update     bool `json:"update" bson:"update"`
	Delete     bool `json:"delete" bson:"delete"`
	Activate   bool `json:"activate" bson:"activate"`
	Inactivate bool `json:"inactivate" bson:"inactivate"`
	FullAccess bool `json:"full_access" bson:"full_access"`
}

// MenuItem belongs to exactly one Menu and links to one Module. Like its
// parent it carries a role-id edge set and an ascending order key.
type MenuItem struct {
	ID           string       `json:"id"`
	Active       bool         `json:"active"`
	Version      int          `json:"version"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	CreatedByID  string       `json:"created_by_id,omitempty"`
	UpdatedByID  string       `json:"updated_by_id,omitempty"`
	Name         string       `json:"name"`
	Icon         string       `json:"icon,omitempty"`
	Order        int          `json:"order"`
	MenuID       string       `json:"menu_id"`
	ModuleID     string       `json:"module_id,omitempty"`
	RoleIDs      []string     `json:"role_ids,omitempty"`
	Capabilities Capabilities `json:"capabilities"`
}
