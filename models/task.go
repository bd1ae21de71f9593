package models

type Task struct {
	ID                   uint      `json:"id" gorm:"primaryKey"`
	PropertyID           uint      `json:"propertyId" gorm:"not null;index"`
	Property             *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
	OfferID              *uint     `json:"offerId,omitempty" gorm:"index"`
	Offer                *Offer    `json:"offer,omitempty" gorm:"foreignKey:OfferID"`
	TaskCategory         string    `json:"taskCategory"`
	TaskName             string    `json:"taskName"`
	TaskDescription      string    `json:"taskDescription"`
	TaskPrice            float64   `json:"taskPrice" gorm:"type:decimal"`
	CleaningRequirements string    `json:"cleaningRequirements"`
}
