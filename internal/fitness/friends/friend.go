package friends

// Friend is a user on the other end of a friendship edge.
type Friend struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
