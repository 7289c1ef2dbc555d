package sitepanel

// Collection names one of the REST collaborator's collections.
type Collection string

const (
	// Projects is the portfolio collection (/projects).
	Projects Collection = "projects"

	// Clients is the testimonial collection (/clients).
	Clients Collection = "clients"

	// Contacts holds contact-form submissions (/contacts).
	Contacts Collection = "contacts"

	// Newsletter holds newsletter subscribers (/newsletter).
	Newsletter Collection = "newsletter"

	// Activity is the admin dashboard feed (/activity). It is read-only.
	Activity Collection = "activity"
)

// String returns the string representation of the collection.
func (c Collection) String() string {
	return string(c)
}

// Path returns the collection path relative to the API base URL.
func (c Collection) Path() string {
	return "/" + string(c)
}

// Valid reports whether c is a known collection.
func (c Collection) Valid() bool {
	switch c {
	case Projects, Clients, Contacts, Newsletter, Activity:
		return true
	}
	return false
}

// Deletable reports whether records of c can be removed through the API.
func (c Collection) Deletable() bool {
	return c == Projects || c == Clients
}

// Singular returns the human name of one record, as used in user-facing messages.
func (c Collection) Singular() string {
	switch c {
	case Projects:
		return "project"
	case Clients:
		return "client"
	case Contacts:
		return "contact"
	case Newsletter:
		return "subscriber"
	default:
		return string(c)
	}
}

// Default client settings.
const (
	// DefaultBaseURL is where the REST collaborator listens in development.
	DefaultBaseURL = "http://localhost:3000/api"

	// DefaultUserAgent is sent with every API request.
	DefaultUserAgent = "sitepanel/" + Version
)
