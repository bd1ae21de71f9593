package dtos

type CompanyLoginRequest struct {
	AdminEmail string `json:"adminEmail" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type CompanyVerifyRequest struct {
	AdminEmail string `json:"adminEmail" validate:"required"`
	OTP        string `json:"otp" validate:"required"`
}

type SuperAdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SuperAdminVerifyRequest struct {
	Email       string `json:"email" validate:"required,email"`
	ProvidedOTP string `json:"providedOtp" validate:"required"`
}

// CompanyRequest is the body of create-company and edit-company. On edit
// only non-empty fields are applied. Dates accept YYYY-MM-DD or RFC 3339.
type CompanyRequest struct {
	CompanyName           string `json:"companyName" validate:"required"`
	Address               string `json:"address" validate:"required"`
	ContactEmail          string `json:"contactEmail" validate:"required"`
	PhoneNumber           string `json:"phoneNumber" validate:"required"`
	SubscriptionPlan      string `json:"subscriptionPlan" validate:"required"`
	SubscriptionStartDate string `json:"subscriptionStartDate" validate:"required"`
	SubscriptionEndDate   string `json:"subscriptionEndDate" validate:"required"`
	PaymentFrequency      string `json:"paymentFrequency"`
	LicenseNo             string `json:"licenseNo"`
	LicenseExpiryDate     string `json:"licenseExpiryDate"`
	AdminName             string `json:"adminName" validate:"required"`
	AdminEmail            string `json:"adminEmail" validate:"required,email"`
	Password              string `json:"password"`
}
