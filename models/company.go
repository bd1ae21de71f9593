package models

import "time"

type Company struct {
	ID                    uint      `json:"id" gorm:"primaryKey"`
	CompanyName           string    `json:"companyName"`
	Address               string    `json:"address"`
	ContactEmail          string    `json:"contactEmail"`
	PhoneNumber           string    `json:"phoneNumber"`
	SubscriptionPlan      string    `json:"subscriptionPlan"`
	SubscriptionStartDate time.Time `json:"subscriptionStartDate"`
	SubscriptionEndDate   time.Time `json:"subscriptionEndDate"`
	PaymentFrequency      string    `json:"paymentFrequency"`
	LicenseNo             string    `json:"licenseNo"`
	LicenseExpiryDate     time.Time `json:"licenseExpiryDate"`
	AdminName             string    `json:"adminName"`
	AdminEmail            string    `json:"adminEmail" gorm:"index"`
	Password              string    `json:"password,omitempty"`
	OTPState
}

func (c *Company) AccountID() uint       { return c.ID }
func (c *Company) LoginEmail() string    { return c.AdminEmail }
func (c *Company) LoginPassword() string { return c.Password }
func (c *Company) OTPFields() *OTPState  { return &c.OTPState }
