package league

// Target maps a league label to the listing page enumerating its teams.
type Target struct {
	Label string `json:"label" validate:"required"`
	URL   string `json:"url" validate:"required,http_url"`
}
