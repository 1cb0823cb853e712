package seed

import (
	"github.com/shopspring/decimal"

	"housemax/internal/domain"
)

type categoryDef struct {
	name string
	slug string
}

// Product and review definitions refer to earlier stages by position.
var categories = []categoryDef{
	{name: "Electronics", slug: "electronics"},
	{name: "Furniture", slug: "furniture"},
	{name: "Home Decor", slug: "home-decor"},
	{name: "Kitchen & Dining", slug: "kitchen"},
	{name: "Bedroom", slug: "bedroom"},
}

type productDef struct {
	name        string
	slug        string
	description string
	price       string
	stock       int
	imageURL    string
	category    int
}

var products = []productDef{
	{"Smart TV 55 Inch", "smart-tv-55-inch", "4K Ultra HD Smart TV with built-in streaming apps and voice control.", "599.99", 25, "/images/smart-tv.jpg", 0},
	{"Wireless Bluetooth Speaker", "wireless-speaker", "High-quality wireless speaker with 12-hour battery life.", "89.99", 50, "/images/speaker.jpg", 0},

	{"Modern 3-Seater Sofa", "modern-sofa", "Comfortable modern sofa with premium fabric upholstery.", "799.99", 15, "/images/sofa.jpg", 1},
	{"Dining Table Set (6 chairs)", "dining-table-set", "Solid wood dining table with 6 matching chairs.", "1299.99", 8, "/images/dining-set.jpg", 1},

	{"Modern Wall Art Set", "wall-art-set", "Set of 3 modern abstract wall art pieces.", "149.99", 30, "/images/wall-art.jpg", 2},
	{"Modern Floor Lamp", "floor-lamp", "Adjustable floor lamp with LED lighting.", "199.99", 20, "/images/floor-lamp.jpg", 2},

	{"Premium Coffee Maker", "coffee-maker", "Programmable coffee maker with built-in grinder.", "299.99", 35, "/images/coffee-maker.jpg", 3},
	{"Professional Knife Set", "kitchen-knife-set", "Set of 8 professional-grade kitchen knives.", "179.99", 40, "/images/knife-set.jpg", 3},

	{"Memory Foam Mattress", "memory-foam-mattress", "Queen size memory foam mattress with cooling gel.", "899.99", 12, "/images/mattress.jpg", 4},
	{"6-Drawer Bedroom Dresser", "bedroom-dresser", "Solid wood dresser with 6 spacious drawers.", "649.99", 10, "/images/dresser.jpg", 4},
}

const (
	AdminEmail    = "admin@housemax.com"
	CustomerEmail = "customer@example.com"
)

type userDef struct {
	email string
	name  string
	role  domain.UserRole
}

var (
	admin    = userDef{email: AdminEmail, name: "Admin User", role: domain.RoleAdmin}
	customer = userDef{email: CustomerEmail, name: "John Doe", role: domain.RoleUser}
)

// Reviews are written by the customer.
type reviewDef struct {
	rating  int
	comment string
	product int
}

var reviews = []reviewDef{
	{rating: 5, comment: "Excellent product! Highly recommended.", product: 0},
	{rating: 4, comment: "Good quality, fast delivery.", product: 2},
	{rating: 5, comment: "Perfect addition to my home!", product: 4},
}

func (d categoryDef) model() domain.Category {
	return domain.Category{Name: d.name, Slug: d.slug}
}

func (d productDef) model(categoryID string) domain.Product {
	desc, img := d.description, d.imageURL
	return domain.Product{
		Name:        d.name,
		Slug:        d.slug,
		Description: &desc,
		Price:       decimal.RequireFromString(d.price),
		Stock:       d.stock,
		ImageURL:    &img,
		CategoryID:  categoryID,
	}
}

func (d reviewDef) model(userID, productID string) domain.Review {
	c := d.comment
	return domain.Review{Rating: d.rating, Comment: &c, UserID: userID, ProductID: productID}
}
