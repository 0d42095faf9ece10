package models

type Product struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Price       Number `json:"price" yaml:"price"`
	Image       string `json:"image" yaml:"image"`
	Description string `json:"description,omitempty" yaml:"description"`
}
