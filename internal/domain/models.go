package domain

type Car struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"car_name" json:"car_name"`
	Model    string `db:"car_model" json:"car_model"`
	Year     int    `db:"car_year" json:"car_year"`
	Location string `db:"location" json:"location"` // doubles as the city facet
	Address  string `db:"address" json:"address"`
	Price    int64  `db:"price" json:"price"`
	Type     string `db:"type" json:"type"`
	Sold     bool   `db:"sold" json:"sold"`
	Image    string `db:"image" json:"image"`
}

type ContactMessage struct {
	ID      int64  `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	Email   string `db:"email" json:"email"`
	Message string `db:"message" json:"message"`
}
