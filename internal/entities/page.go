package entities

const (
	DefaultPageNumber = 1
	DefaultPageLimit  = 20
	MaxPageLimit      = 100
)

// Page — параметры пагинации списочных выборок.
type Page struct {
	Number int
	Limit  int
}

// Normalize приводит страницу к допустимым границам: 1/20 по умолчанию,
// limit не больше 100.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = DefaultPageNumber
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}
