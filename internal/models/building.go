package models

type Building struct {
	ID        uint64  `gorm:"primarykey" json:"id"`
	Address   string  `gorm:"not null" json:"address"`
	Longitude float64 `gorm:"not null" json:"longitude"`
	Latitude  float64 `gorm:"not null" json:"latitude"`

	// Relations
	Organizations []Organization `gorm:"foreignKey:BuildingID" json:"organizations,omitempty"`
}

// TableName keeps the table name used by the existing schema.
func (Building) TableName() string {
	return "Buildings"
}
