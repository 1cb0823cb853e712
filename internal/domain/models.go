package domain

// Models returns every persisted entity, parents before children.
func Models() []any {
	return []any{
		&User{},
		&Category{},
		&Product{},
		&Review{},
		&Order{},
		&OrderItem{},
		&Cart{},
		&CartItem{},
	}
}
