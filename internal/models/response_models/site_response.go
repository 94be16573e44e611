package response_models

type Site struct {
	ID          uint   `json:"id"`
	SiteName    string `json:"site_name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}
