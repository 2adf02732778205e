package catalog

import "phone-store-backend/models"

var demoPhones = []models.Product{
	{
		Brand:       "Apple",
		Model:       "iPhone 15 Pro",
		Description: "A17 Pro chip, ProMotion, titanium body",
		Price:       1199,
		Stock:       25,
		Image:       "https://images.unsplash.com/photo-1695653422656-ef532eb0d99f?q=80&w=1200&auto=format&fit=crop",
		Colors:      []string{"Black", "White", "Blue"},
		Storage:     []string{"128GB", "256GB", "512GB"},
		Screen:      `6.1" OLED`,
		Battery:     "3274 mAh",
		Camera:      "48MP main",
	},
	{
		Brand:       "Samsung",
		Model:       "Galaxy S23 Ultra",
		Description: "200MP camera, S Pen, powerhouse",
		Price:       1099,
		Stock:       30,
		Image:       "https://images.unsplash.com/photo-1670272500051-3c8aaf645ed9?q=80&w=1200&auto=format&fit=crop",
		Colors:      []string{"Green", "Black", "Cream"},
		Storage:     []string{"256GB", "512GB"},
		Screen:      `6.8" AMOLED`,
		Battery:     "5000 mAh",
		Camera:      "200MP",
	},
	{
		Brand:       "Google",
		Model:       "Pixel 8 Pro",
		Description: "Tensor G3, best-in-class AI",
		Price:       999,
		Stock:       15,
		Image:       "https://images.unsplash.com/photo-1696855876023-4d620f33220e?q=80&w=1200&auto=format&fit=crop",
		Colors:      []string{"Obsidian", "Porcelain"},
		Storage:     []string{"128GB", "256GB"},
		Screen:      `6.7" OLED`,
		Battery:     "5050 mAh",
		Camera:      "50MP",
	},
}
