package entity

type Movie struct {
	Base
	Title       string `db:"title"`
	Description string `db:"description"`
	Duration    int    `db:"duration"`
}
