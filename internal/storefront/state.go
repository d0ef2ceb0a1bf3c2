package storefront

import (
	"GemsByMike/internal/cart"
	"GemsByMike/internal/catalog"
	"GemsByMike/internal/i18n"
)

// State is everything one storefront session owns. Values are never
// modified in place; each action returns the next State.
type State struct {
	Cart   cart.Cart
	Query  string
	Locale i18n.Locale
}

func NewState(initial i18n.Locale) State {
	if !initial.Valid() {
		initial = i18n.Default
	}
	return State{Locale: initial}
}

func SetQuery(s State, q string) State {
	s.Query = q
	return s
}

func AddToCart(s State, p catalog.Product) State {
	s.Cart = cart.Add(s.Cart, p)
	return s
}

// SetLocale switches the active locale. On error the returned State is s.
func SetLocale(s State, code string) (State, error) {
	loc, err := i18n.Parse(code)
	if err != nil {
		return s, err
	}
	s.Locale = loc
	return s, nil
}
