package models

type Template struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
