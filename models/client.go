package models

// Client is a customer of the business. It owns many properties.
type Client struct {
	ID                uint       `json:"id" gorm:"primaryKey"`
	ClientName        string     `json:"clientName" gorm:"not null"`
	ClientEmail       string     `json:"clientEmail"`
	ClientAddress     string     `json:"clientAddress"`
	ClientPhoneNumber string     `json:"clientPhoneNumber"`
	Properties        []Property `json:"properties,omitempty" gorm:"foreignKey:ClientID"`
}
