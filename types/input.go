package types

// ProjectInput is the body of POST /projects.
type ProjectInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Location    string `json:"location"`
}

// ClientInput is the body of POST /clients.
type ClientInput struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ContactInput is the body of POST /contacts.
type ContactInput struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	City     string `json:"city"`
}

// SubscriptionInput is the body of POST /newsletter.
type SubscriptionInput struct {
	Email string `json:"email"`
}
