package models

type Property struct {
	ID                      uint    `json:"id" gorm:"primaryKey"`
	ClientID                uint    `json:"clientId" gorm:"not null;index"`
	Client                  *Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	PropertyAddress         string  `json:"propertyAddress" gorm:"not null"`
	PropertyType            string  `json:"propertyType"`
	PropertyAmenities       string  `json:"propertyAmenities"`
	NoOfPetAllowed          *int    `json:"noOfPetAllowed"`
	Tasks                   []Task  `json:"tasks,omitempty" gorm:"foreignKey:PropertyID"`
	SpecialFeatureStartDate string  `json:"specialFeatureStartDate"`
	SpecialFeatureEndDate   string  `json:"specialFeatureEndDate"`
}
