package models

// Offer is a priced proposal for work on one property of one client.
// Status is a free-form label.
type Offer struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ClientID       uint      `json:"clientId" gorm:"not null;index"`
	Client         *Client   `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	PropertyID     uint      `json:"propertyId" gorm:"not null;index"`
	Property       *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
	Tasks          []Task    `json:"tasks,omitempty" gorm:"foreignKey:OfferID"`
	TotalAmount    float64   `json:"totalAmount" gorm:"type:decimal"`
	TotalTime      int       `json:"totalTime"`
	Discount       *float64  `json:"discount" gorm:"type:decimal"`
	CommentEndDate string    `json:"commentEndDate"`
	Status         string    `json:"status"`
	Comment        string    `json:"comment"`
	OfferEmail     string    `json:"offerEmail"`
	OfferPhone     string    `json:"offerPhone"`
}
