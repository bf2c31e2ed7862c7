package models

type Theme struct {
	ID   uint
	Name string
}

type Subtheme struct {
	ID      uint
	ThemeID uint
	Name    string
}

type Category struct {
	ID         uint
	SubthemeID uint
	Name       string
}

type Name struct {
	ID   uint
	Name string
}
