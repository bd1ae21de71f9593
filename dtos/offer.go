package dtos

// ClientDetails either points at an existing client through ClientID or
// describes a new one.
type ClientDetails struct {
	ClientID          uint   `json:"clientId"`
	ClientName        string `json:"clientName"`
	ClientEmail       string `json:"clientEmail"`
	ClientAddress     string `json:"clientAddress"`
	ClientPhoneNumber string `json:"clientPhoneNumber"`
}

// PropertyDetails either points at an existing property through PropertyID
// or describes a new one. A new property always belongs to the client
// resolved from the same request.
type PropertyDetails struct {
	PropertyID              uint   `json:"propertyId"`
	PropertyAddress         string `json:"propertyAddress"`
	PropertyType            string `json:"propertyType"`
	PropertyAmenities       string `json:"propertyAmenities"`
	NoOfPetAllowed          *int   `json:"noOfPetAllowed"`
	SpecialFeatureStartDate string `json:"specialFeatureStartDate"`
	SpecialFeatureEndDate   string `json:"specialFeatureEndDate"`
}

type OfferDetails struct {
	TotalAmount    float64  `json:"totalAmount"`
	TotalTime      int      `json:"totalTime"`
	Discount       *float64 `json:"discount"`
	CommentEndDate string   `json:"commentEndDate"`
	Comment        string   `json:"comment"`
	OfferEmail     string   `json:"offerEmail"`
	OfferPhone     string   `json:"offerPhone"`
}

type TaskDetails struct {
	TaskCategory         string  `json:"taskCategory"`
	TaskName             string  `json:"taskName"`
	TaskDescription      string  `json:"taskDescription"`
	TaskPrice            float64 `json:"taskPrice"`
	CleaningRequirements string  `json:"cleaningRequirements"`
}

// CreateOfferRequest is the composite body of POST /api/offers.
type CreateOfferRequest struct {
	ClientDetails   *ClientDetails   `json:"clientDetails"`
	PropertyDetails *PropertyDetails `json:"propertyDetails"`
	OfferDetails    *OfferDetails    `json:"offerDetails"`
	AddTasks        []TaskDetails    `json:"addTasks"`
	Status          string           `json:"status"`
}

type UpdateOfferStatusRequest struct {
	Status string `json:"status"`
}
