package service

// User-facing texts.
const (
	NetworkErrorMessage = "Network error. Please check your connection and try again."

	ContactSuccessMessage  = "Thank you! Your message has been sent successfully. We will get back to you within 24 hours."
	ContactFailureFallback = "Failed to send message"

	NewsletterInvalidMessage  = "Please enter a valid email address."
	NewsletterSuccessMessage  = "Thank you for subscribing to our newsletter!"
	NewsletterFailureFallback = "Failed to subscribe. Please try again."

	ProjectsLoadFailedPublic = "Failed to load projects. Please try again later."
	ProjectsEmptyPublic      = "No projects available at the moment."
	ClientsLoadFailedPublic  = "Failed to load clients. Please try again later."
	ClientsEmptyPublic       = "No client testimonials available at the moment."

	ActivityEmpty      = "No recent activity."
	ActivityLoadFailed = "Failed to load recent activity."

	ProjectsEmptyAdmin    = "No projects found. Add your first project!"
	ClientsEmptyAdmin     = "No clients found. Add your first client!"
	ContactsEmptyAdmin    = "No contact submissions yet."
	SubscribersEmptyAdmin = "No subscribers yet."

	LogoutConfirmMessage = "Are you sure you want to logout?"
)

// Display defaults substituted for missing optional fields.
const (
	DefaultProjectImage       = "https://images.unsplash.com/photo-1558655146-9f40138edfeb?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"
	DefaultProjectCategory    = "Consultation"
	DefaultProjectLocation    = "Remote"
	DefaultProjectDescription = "No description available."

	DefaultClientImage       = "https://images.unsplash.com/photo-1560250097-0b93528c311a?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"
	DefaultClientDescription = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua."

	AdminThumbnailPlaceholder = "https://via.placeholder.com/50"
	AdminMissingCategory      = "N/A"
)

// DescriptionLimit is how many characters of a description the admin tables show.
const DescriptionLimit = 50

// DateLayout matches a browser's en-US short date.
const DateLayout = "1/2/2006"
