package pets

// Pet es el perfil de una mascota en el dashboard.
// Los tags JSON son el formato persistido bajo la key "pets".
type Pet struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Breed      string `json:"breed"`
	Age        int    `json:"age"`
	ImageURL   string `json:"imageUrl"`
	IsFavorite bool   `json:"isFavorite"`
}
