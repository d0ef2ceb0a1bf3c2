package storefront

import (
	"GemsByMike/internal/cart"
	"GemsByMike/internal/catalog"
	"GemsByMike/internal/i18n"
)

const (
	logoPath     = "/logo.png"
	contactEmail = "contact@gemsbymike.com"
	contactPhone = "+1 234 567 890"
	footerText   = "© 2025 GemsByMike. All rights reserved."
)

var categories = []string{"Ruby", "Sapphire", "Emerald", "Diamond"}

type View struct {
	SessionID string `json:"session_id,omitempty"`
	Locale    string `json:"locale"`

	Header   Header            `json:"header"`
	Hero     Hero              `json:"hero"`
	Toolbar  Toolbar           `json:"toolbar"`
	Products ProductsSection   `json:"products"`
	Checkout CheckoutSection   `json:"checkout"`
	Contact  ContactSection    `json:"contact"`
	Footer   string            `json:"footer"`
	Strings  map[string]string `json:"strings"`
}

type Header struct {
	Logo      string    `json:"logo"`
	LogoAlt   string    `json:"logo_alt"`
	Nav       []NavLink `json:"nav"`
	CartCount int       `json:"cart_count"`
}

type NavLink struct {
	Anchor string `json:"anchor"`
	Label  string `json:"label"`
}

type Hero struct {
	Title   string `json:"title"`
	Tagline string `json:"tagline"`
	Explore string `json:"explore"`
}

type Toolbar struct {
	Categories        []string         `json:"categories"`
	Query             string           `json:"query"`
	SearchPlaceholder string           `json:"search_placeholder"`
	Languages         []LanguageOption `json:"languages"`
}

type LanguageOption struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

type ProductsSection struct {
	Heading   string        `json:"heading"`
	AddToCart string        `json:"add_to_cart"`
	Items     []ProductCard `json:"items"`
}

type ProductCard struct {
	catalog.Product
	DisplayPrice string `json:"display_price"`
}

type CheckoutSection struct {
	Heading      string     `json:"heading"`
	Empty        bool       `json:"empty"`
	EmptyMessage string     `json:"empty_message,omitempty"`
	Lines        []CartLine `json:"lines"`
	TotalLabel   string     `json:"total_label"`
	Total        int64      `json:"total"`
	DisplayTotal string     `json:"display_total"`
	PlaceOrder   string     `json:"place_order"`
}

type CartLine struct {
	cart.Line
	DisplayPrice string `json:"display_price"`
}

type ContactSection struct {
	Heading string `json:"heading"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// Render derives the full view from st. Nothing here is cached: filtered
// products, totals and strings are recomputed on every call.
func Render(st State, products *catalog.Snapshot, strs *i18n.Bundle) View {
	loc := st.Locale
	t := func(key string) string { return strs.Resolve(loc, key) }

	visible := catalog.Visible(products.Products(), st.Query)
	cards := make([]ProductCard, len(visible))
	for i, p := range visible {
		cards[i] = ProductCard{Product: p, DisplayPrice: i18n.FormatPrice(loc, p.Price)}
	}

	lines := cart.Lines(st.Cart)
	cartLines := make([]CartLine, len(lines))
	for i, l := range lines {
		cartLines[i] = CartLine{Line: l, DisplayPrice: i18n.FormatPrice(loc, l.Product.Price)}
	}

	total := cart.Total(st.Cart)
	empty := cart.Count(st.Cart) == 0

	v := View{
		Locale: string(loc),
		Header: Header{
			Logo:    logoPath,
			LogoAlt: t("logoAlt"),
			Nav: []NavLink{
				{Anchor: "#about", Label: t("about")},
				{Anchor: "#products", Label: t("gemstones")},
				{Anchor: "#contact", Label: t("contact")},
			},
			CartCount: cart.Count(st.Cart),
		},
		Hero: Hero{
			Title:   t("title"),
			Tagline: t("tagline"),
			Explore: t("explore"),
		},
		Toolbar: Toolbar{
			Categories:        append([]string(nil), categories...),
			Query:             st.Query,
			SearchPlaceholder: t("search"),
			Languages:         languageOptions(loc),
		},
		Products: ProductsSection{
			Heading:   t("ourProducts"),
			AddToCart: t("addToCart"),
			Items:     cards,
		},
		Checkout: CheckoutSection{
			Heading:      t("checkout"),
			Empty:        empty,
			Lines:        cartLines,
			TotalLabel:   t("total"),
			Total:        total,
			DisplayTotal: i18n.FormatPrice(loc, total),
			PlaceOrder:   t("placeOrder"),
		},
		Contact: ContactSection{
			Heading: t("contactUs"),
			Email:   contactEmail,
			Phone:   contactPhone,
		},
		Footer:  footerText,
		Strings: strs.Strings(loc),
	}
	if empty {
		v.Checkout.EmptyMessage = t("cartEmpty")
	}
	return v
}

func languageOptions(active i18n.Locale) []LanguageOption {
	supported := i18n.Supported()
	out := make([]LanguageOption, len(supported))
	for i, l := range supported {
		out[i] = LanguageOption{Code: string(l), Label: l.Label(), Active: l == active}
	}
	return out
}
