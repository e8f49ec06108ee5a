package model

// Company is an organisation contacts work for.
// Like every model here it carries no persistence tags; storage mapping lives in the repository layer.
type Company struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
