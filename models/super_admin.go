package models

type SuperAdmin struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Email    string `json:"email" gorm:"index"`
	Password string `json:"password,omitempty"`
	OTPState
}

func (a *SuperAdmin) AccountID() uint       { return a.ID }
func (a *SuperAdmin) LoginEmail() string    { return a.Email }
func (a *SuperAdmin) LoginPassword() string { return a.Password }
func (a *SuperAdmin) OTPFields() *OTPState  { return &a.OTPState }
