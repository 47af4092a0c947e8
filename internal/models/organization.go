package models

type Organization struct {
	ID         uint64 `gorm:"primarykey" json:"id"`
	LegalName  string `gorm:"not null" json:"legal_name"`
	BuildingID uint64 `gorm:"not null" json:"building_id"`

	// Relations
	Building     Building      `gorm:"foreignKey:BuildingID" json:"building,omitempty"`
	PhoneNumbers []PhoneNumber `gorm:"foreignKey:OrganizationID" json:"phone_numbers,omitempty"`
	Activities   []Activity    `gorm:"many2many:organization_activity" json:"activities,omitempty"`
}

func (Organization) TableName() string {
	return "Organizations"
}

// PhoneNumber rows are owned by their organization: they are created together
// with it and removed when it is deleted, never managed on their own.
type PhoneNumber struct {
	ID             uint64 `gorm:"primarykey" json:"id"`
	PhoneNumber    string `gorm:"not null" json:"phone_number"`
	OrganizationID uint64 `gorm:"not null" json:"organization_id"`

	// Relations
	Organization Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
}

func (PhoneNumber) TableName() string {
	return "OrgPhoneNumbers"
}
