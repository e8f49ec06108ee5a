package model

// Country is where a contact is based.
type Country struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
