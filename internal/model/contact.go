package model

// Contact is a person belonging to exactly one Company and one Country.
// Company and Country are only populated by queries that join them in.
type Contact struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	CompanyID int64    `json:"companyId"`
	CountryID int64    `json:"countryId"`
	Company   *Company `json:"company,omitempty"`
	Country   *Country `json:"country,omitempty"`
}
