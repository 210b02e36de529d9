package entity

type Product struct {
	Base
	Name        string  `db:"name"`
	Category    string  `db:"category"`
	Price       float64 `db:"price"`
	Stock       int     `db:"stock"`
	Description string  `db:"description"`
	Options     string  `db:"options"`
	Available   bool    `db:"available"`
}
