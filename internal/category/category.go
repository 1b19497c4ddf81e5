package category

// Category is the public DTO returned by the category API.
type Category struct {
	ID   int    `json:"categoryId"`
	Name string `json:"name"`
}
