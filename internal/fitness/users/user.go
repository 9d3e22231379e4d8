package users

type User struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Weight float64 `json:"weight"`
}

type NewUser struct {
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Weight float64 `json:"weight"`
}
