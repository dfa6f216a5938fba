package api

// Service accessors group Client methods by endpoint family.
// Each service embeds *Client so call sites read client.Uploads().Video(...).

type UploadsService struct{ *Client }

type PostsService struct{ *Client }

type ScheduleService struct{ *Client }

type UsersService struct{ *Client }

type AnalyticsService struct{ *Client }

type PagesService struct{ *Client }

// Uploads returns the upload operations (video, photos, text, document).
func (c *Client) Uploads() UploadsService {
	return UploadsService{c}
}

// Posts returns upload status and history operations.
func (c *Client) Posts() PostsService {
	return PostsService{c}
}

// Schedule returns scheduled-post management operations.
func (c *Client) Schedule() ScheduleService {
	return ScheduleService{c}
}

// Users returns profile management and JWT operations.
func (c *Client) Users() UsersService {
	return UsersService{c}
}

// Analytics returns analytics and metrics operations.
func (c *Client) Analytics() AnalyticsService {
	return AnalyticsService{c}
}

// Pages returns the platform helper lookups (Facebook pages, LinkedIn pages,
// Pinterest boards).
func (c *Client) Pages() PagesService {
	return PagesService{c}
}
