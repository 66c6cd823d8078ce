package models

// NewUser is the payload for creating a console user.
type NewUser struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Language  string `json:"language,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// SalesRep is a sales representative record from the management directory.
type SalesRep struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Region    string `json:"region,omitempty"`
	Active    bool   `json:"active"`
}

// Customer is a customer record from the management directory.
type Customer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	SalesRepID  string `json:"salesRepId,omitempty"`
	ReportCount int    `json:"reportCount"`
}

// ListQuery narrows directory list requests. Zero values mean "server default".
type ListQuery struct {
	Page     int
	PageSize int
	Search   string
}
