package models

// Activity is a node in the business-activity tree. The tree is stored as an
// adjacency list: ParentID points back into the same table, root activities
// carry a NULL parent. Level is supplied by the caller on insert and is never
// recomputed from the actual tree depth.
type Activity struct {
	ID       uint64  `gorm:"primarykey" json:"id"`
	Name     string  `gorm:"not null" json:"name"`
	ParentID *uint64 `gorm:"index" json:"parent_id"`
	Level    int     `gorm:"default:0" json:"level"`

	// Relations
	Parent        *Activity      `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Children      []Activity     `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Organizations []Organization `gorm:"many2many:organization_activity" json:"organizations,omitempty"`
}

func (Activity) TableName() string {
	return "activities"
}
