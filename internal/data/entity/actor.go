package entity

type Actor struct {
	BaseSimple
	Name string `db:"name"`
}
