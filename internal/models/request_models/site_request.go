package request_models

type SiteRequest struct {
	SiteName    string `json:"site_name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type SensorReadingRequest struct {
	Date     string `json:"date"`
	Hour     string `json:"hour"`
	SiteName string `json:"site_name"`
	Count    *int   `json:"count"`
}
