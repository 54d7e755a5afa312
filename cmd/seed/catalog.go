package main

import (
	"time"

	"github.com/bgcollection/storefront/internal/models"
)

func mustTime(raw string) time.Time {
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		panic(err)
	}
	return parsed
}

var seedCategories = []models.Category{
	{Slug: "photo-frames", Name: "Photo Frames", Image: "/placeholder.svg?height=400&width=300", SortOrder: 1},
	{Slug: "wall-clocks", Name: "Wall Clocks", Image: "/placeholder.svg?height=400&width=300", SortOrder: 2},
	{Slug: "home-decor", Name: "Home Decor", Image: "/placeholder.svg?height=400&width=300", SortOrder: 3},
	{Slug: "gift-items", Name: "Gift Items", Image: "/placeholder.svg?height=400&width=300", SortOrder: 4},
}

var seedProducts = []models.Product{
	{
		ID:          "1",
		Name:        "Elegant Photo Frame",
		Description: "A beautifully crafted photo frame with intricate designs. Perfect for preserving your cherished memories and enhancing your home decor.",
		Price:       models.NewMoneyFromInt(1499),
		Images:      models.StringArray{"/images/elegant-frame.jpg", "/images/elegant-frame.jpg"},
		Category:    "photo-frames",
		Colors:      models.StringArray{"Gold", "Silver", "Black"},
		Sizes:       models.StringArray{"4x6", "5x7", "8x10"},
		Material:    "Premium Wood with Metal Accents",
		Rating:      4.8,
		ReviewCount: 124,
		Popularity:  95,
		CreatedAt:   mustTime("2023-04-15T10:30:00Z"),
	},
	{
		ID:          "2",
		Name:        "Minimalist Wall Clock",
		Description: "A sleek and modern wall clock that adds a touch of elegance to any room. Features silent movement for a peaceful environment.",
		Price:       models.NewMoneyFromInt(2499),
		Images:      models.StringArray{"/images/minimal-clock.jpg", "/images/minimal-clock.jpg"},
		Category:    "wall-clocks",
		Colors:      models.StringArray{"White", "Black", "Walnut"},
		Sizes:       models.StringArray{"10 inch", "12 inch", "16 inch"},
		Material:    "Premium Wood and Metal",
		Rating:      4.9,
		ReviewCount: 87,
		Popularity:  90,
		CreatedAt:   mustTime("2023-05-20T14:45:00Z"),
	},
	{
		ID:          "3",
		Name:        "Decorative Table Lamp",
		Description: "Handcrafted decorative table lamp with a unique design that creates a warm and inviting ambiance in any space.",
		Price:       models.NewMoneyFromInt(3499),
		Images:      models.StringArray{"/images/lamp.jpg", "/images/lamp.jpg"},
		Category:    "home-decor",
		Colors:      models.StringArray{"Brass", "Copper", "Matte Black"},
		Sizes:       models.StringArray{"Small", "Medium", "Large"},
		Material:    "Metal with Fabric Shade",
		Rating:      4.7,
		ReviewCount: 56,
		Popularity:  88,
		CreatedAt:   mustTime("2023-06-10T09:15:00Z"),
	},
	{
		ID:          "4",
		Name:        "Scented Candle Set",
		Description: "A set of premium scented candles that create a relaxing atmosphere. Perfect for self-care or as a thoughtful gift.",
		Price:       models.NewMoneyFromInt(1299),
		Images:      models.StringArray{"/images/scented-candle.jpg", "/images/scented-candle.jpg"},
		Category:    "gift-items",
		Colors:      models.StringArray{"Lavender", "Vanilla", "Sandalwood"},
		Sizes:       models.StringArray{"Set of 3", "Set of 5"},
		Material:    "Soy Wax with Essential Oils",
		Rating:      4.6,
		ReviewCount: 42,
		Popularity:  85,
		CreatedAt:   mustTime("2023-07-05T11:20:00Z"),
	},
	{
		ID:          "5",
		Name:        "Handcrafted Ceramic Vase",
		Description: "A beautiful handcrafted ceramic vase that adds an artistic touch to your home. Each piece is unique with subtle variations.",
		Price:       models.NewMoneyFromInt(1899),
		Images:      models.StringArray{"/images/vase.jpg", "/images/vase.jpg"},
		Category:    "home-decor",
		Colors:      models.StringArray{"Blue", "Terracotta", "White"},
		Sizes:       models.StringArray{"Small", "Medium", "Large"},
		Material:    "Handcrafted Ceramic",
		Rating:      4.8,
		ReviewCount: 31,
		Popularity:  82,
		CreatedAt:   mustTime("2023-08-15T16:30:00Z"),
	},
	{
		ID:          "6",
		Name:        "Vintage Wall Clock",
		Description: "A vintage-inspired wall clock with Roman numerals that adds a classic touch to any room. Features quiet movement.",
		Price:       models.NewMoneyFromInt(2799),
		Images:      models.StringArray{"/images/vintage-clock.jpg", "/images/vintage-clock.jpg"},
		Category:    "wall-clocks",
		Colors:      models.StringArray{"Antique Bronze", "Rustic Wood"},
		Sizes:       models.StringArray{"12 inch", "16 inch", "20 inch"},
		Material:    "Metal and Wood",
		Rating:      4.7,
		ReviewCount: 64,
		Popularity:  89,
		CreatedAt:   mustTime("2023-09-01T13:45:00Z"),
	},
	{
		ID:          "7",
		Name:        "Crystal Photo Frame",
		Description: "Elegant crystal photo frame that captures and reflects light beautifully. A perfect gift for special occasions.",
		Price:       models.NewMoneyFromInt(2999),
		Images:      models.StringArray{"/images/crystal-framme.jpg", "/images/crystal-framme.jpg"},
		Category:    "photo-frames",
		Colors:      models.StringArray{"Clear", "Blue Tint"},
		Sizes:       models.StringArray{"4x6", "5x7"},
		Material:    "Premium Crystal",
		Rating:      4.9,
		ReviewCount: 28,
		Popularity:  80,
		CreatedAt:   mustTime("2023-10-10T10:00:00Z"),
	},
	{
		ID:          "8",
		Name:        "Personalized Name Plate",
		Description: "Customizable name plate for your home or office. Made with premium materials and elegant design.",
		Price:       models.NewMoneyFromInt(1499),
		Images:      models.StringArray{"/images/nameplate.jpg", "/images/nameplate.jpg"},
		Category:    "gift-items",
		Colors:      models.StringArray{"Wood", "Acrylic", "Metal"},
		Sizes:       models.StringArray{"Standard", "Large"},
		Material:    "Wood, Acrylic, or Metal",
		Rating:      4.5,
		ReviewCount: 47,
		Popularity:  83,
		CreatedAt:   mustTime("2023-11-05T15:20:00Z"),
	},
	{
		ID:          "9",
		Name:        "Digital Wall Clock with Temperature",
		Description: "Modern digital wall clock with temperature and humidity display. Perfect for home or office.",
		Price:       models.NewMoneyFromInt(1899),
		Images:      models.StringArray{"/images/digital-clock.jpg", "/images/digital-clock.jpg"},
		Category:    "wall-clocks",
		Colors:      models.StringArray{"Black", "White"},
		Sizes:       models.StringArray{"Standard"},
		Material:    "ABS Plastic with LED Display",
		Rating:      4.6,
		ReviewCount: 39,
		Popularity:  78,
		CreatedAt:   mustTime("2023-12-01T09:30:00Z"),
	},
	{
		ID:          "10",
		Name:        "Artificial Plant with Decorative Pot",
		Description: "Lifelike artificial plant in a stylish pot. Adds a touch of greenery without the maintenance.",
		Price:       models.NewMoneyFromInt(999),
		Images:      models.StringArray{"/images/plant.jpg", "/images/plant.jpg"},
		Category:    "home-decor",
		Colors:      models.StringArray{"Green with White Pot", "Green with Black Pot"},
		Sizes:       models.StringArray{"Small", "Medium"},
		Material:    "High-quality Artificial Leaves with Ceramic Pot",
		Rating:      4.7,
		ReviewCount: 52,
		Popularity:  81,
		CreatedAt:   mustTime("2024-01-15T14:10:00Z"),
	},
	{
		ID:          "11",
		Name:        "Antique Wooden Photo Frame",
		Description: "Hand-carved wooden photo frame with antique finish. Each piece features unique carvings inspired by traditional Indian motifs.",
		Price:       models.NewMoneyFromInt(2299),
		Images:      models.StringArray{"/images/wooden-frame.jpg", "/images/wooden-frame.jpg"},
		Category:    "photo-frames",
		Colors:      models.StringArray{"Teak", "Mahogany", "Walnut"},
		Sizes:       models.StringArray{"5x7", "8x10"},
		Material:    "Solid Wood with Hand Carving",
		Rating:      4.9,
		ReviewCount: 36,
		Popularity:  87,
		CreatedAt:   mustTime("2023-11-12T08:45:00Z"),
	},
	{
		ID:          "12",
		Name:        "Metallic Mosaic Photo Frame",
		Description: "Contemporary photo frame adorned with metallic mosaic pieces that catch and reflect light beautifully.",
		Price:       models.NewMoneyFromInt(1799),
		Images:      models.StringArray{"/images/mosaic-photo-frame.jpg", "/images/mosaic-photo-frame.jpg"},
		Category:    "photo-frames",
		Colors:      models.StringArray{"Silver", "Gold", "Copper"},
		Sizes:       models.StringArray{"4x6", "5x7"},
		Material:    "Metal with Glass Mosaic",
		Rating:      4.7,
		ReviewCount: 29,
		Popularity:  79,
		CreatedAt:   mustTime("2023-12-05T11:30:00Z"),
	},
	{
		ID:          "13",
		Name:        "Multi-Photo Collage Frame",
		Description: "Elegant frame that holds multiple photos, perfect for displaying family memories or special occasions.",
		Price:       models.NewMoneyFromInt(2499),
		Images:      models.StringArray{"/images/mutli-collage.jpg", "/images/mutli-collage.jpg"},
		Category:    "photo-frames",
		Colors:      models.StringArray{"Black", "White", "Natural Wood"},
		Sizes:       models.StringArray{"12x16 (holds 5 photos)", "16x20 (holds 8 photos)"},
		Material:    "Premium Wood with Glass",
		Rating:      4.8,
		ReviewCount: 42,
		Popularity:  86,
		CreatedAt:   mustTime("2024-01-20T09:15:00Z"),
	},
	{
		ID:          "14",
		Name:        "Geometric Metal Wall Clock",
		Description: "Modern geometric wall clock with an artistic metal frame. A statement piece that doubles as wall art.",
		Price:       models.NewMoneyFromInt(3299),
		Images:      models.StringArray{"/images/metal-wallclock.jpg", "/images/metal-wallclock.jpg"},
		Category:    "wall-clocks",
		Colors:      models.StringArray{"Gold", "Black", "Copper"},
		Sizes:       models.StringArray{"18 inch", "24 inch"},
		Material:    "Premium Metal with Silent Movement",
		Rating:      4.8,
		ReviewCount: 31,
		Popularity:  88,
		CreatedAt:   mustTime("2023-10-25T14:20:00Z"),
	},
	{
		ID:          "15",
		Name:        "Handpainted Wooden Wall Clock",
		Description: "Artisanal wall clock with hand-painted designs inspired by traditional Indian art forms.",
		Price:       models.NewMoneyFromInt(2899),
		Images:      models.StringArray{"/images/handpainted-wallclock.jpg", "/images/handpainted-wallclock.jpg"},
		Category:    "wall-clocks",
		Colors:      models.StringArray{"Multicolor with Blue Base", "Multicolor with Red Base"},
		Sizes:       models.StringArray{"12 inch", "16 inch"},
		Material:    "Solid Wood with Hand Painting",
		Rating:      4.9,
		ReviewCount: 27,
		Popularity:  84,
		CreatedAt:   mustTime("2023-11-18T10:40:00Z"),
	},
	{
		ID:          "16",
		Name:        "Marble Finish Wall Clock",
		Description: "Elegant wall clock with a luxurious marble finish. Adds sophistication to any space.",
		Price:       models.NewMoneyFromInt(3499),
		Images:      models.StringArray{"/images/marble-wall-clock.jpg", "/images/marble-wall-clock.jpg"},
		Category:    "wall-clocks",
		Colors:      models.StringArray{"White Marble", "Black Marble", "Green Marble"},
		Sizes:       models.StringArray{"12 inch", "16 inch"},
		Material:    "Resin with Marble Finish and Metal Hands",
		Rating:      4.8,
		ReviewCount: 35,
		Popularity:  85,
		CreatedAt:   mustTime("2024-01-05T13:15:00Z"),
	},
	{
		ID:          "17",
		Name:        "Aroma Diffuser",
		Description: "Modern aroma diffuser that creates a relaxing atmosphere with essential oils. Features LED mood lighting.",
		Price:       models.NewMoneyFromInt(1999),
		Images:      models.StringArray{"/images/aroma-diffusor.jpg", "/images/aroma-diffusor.jpg"},
		Category:    "home-decor",
		Colors:      models.StringArray{"White", "Black", "Wood"},
		Sizes:       models.StringArray{"Standard"},
		Material:    "ABS Plastic with LED",
		Rating:      4.7,
		ReviewCount: 48,
		Popularity:  83,
		CreatedAt:   mustTime("2024-01-10T11:30:00Z"),
	},
	{
		ID:          "18",
		Name:        "Decorative Wall Hanging",
		Description: "Handcrafted wall hanging with intricate designs. Adds a touch of traditional art to your space.",
		Price:       models.NewMoneyFromInt(1599),
		Images:      models.StringArray{"/images/wall-hanging.jpg", "/images/wall-hanging.jpg"},
		Category:    "home-decor",
		Colors:      models.StringArray{"Multicolor", "Earth Tones"},
		Sizes:       models.StringArray{"Small", "Medium", "Large"},
		Material:    "Cotton and Wood",
		Rating:      4.6,
		ReviewCount: 39,
		Popularity:  80,
		CreatedAt:   mustTime("2024-01-15T09:45:00Z"),
	},
	{
		ID:          "19",
		Name:        "Leather Journal",
		Description: "Handcrafted leather journal with premium paper. Perfect for writing, sketching, or as a gift.",
		Price:       models.NewMoneyFromInt(1299),
		Images:      models.StringArray{"/images/leather-journal.jpg", "/images/leather-journal.jpg"},
		Category:    "gift-items",
		Colors:      models.StringArray{"Brown", "Black", "Tan"},
		Sizes:       models.StringArray{"A5", "A4"},
		Material:    "Genuine Leather with Premium Paper",
		Rating:      4.8,
		ReviewCount: 52,
		Popularity:  82,
		CreatedAt:   mustTime("2024-01-20T14:20:00Z"),
	},
	{
		ID:          "20",
		Name:        "Brass Decorative Bowl",
		Description: "Handcrafted brass bowl with traditional designs. Perfect for decoration or as a centerpiece.",
		Price:       models.NewMoneyFromInt(2499),
		Images:      models.StringArray{"/images/brass-bowl.jpg", "/images/brass-bowl.jpg"},
		Category:    "home-decor",
		Colors:      models.StringArray{"Antique Brass", "Polished Brass"},
		Sizes:       models.StringArray{"Small", "Medium", "Large"},
		Material:    "Solid Brass",
		Rating:      4.9,
		ReviewCount: 41,
		Popularity:  86,
		CreatedAt:   mustTime("2024-01-25T10:15:00Z"),
	},
}
