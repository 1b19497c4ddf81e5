package user

// User is an administrator account. Any authenticated account can access the
// whole admin area; there are no roles or claims beyond session presence.
type User struct {
	ID        int    `json:"userId"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt,omitempty"`
}
