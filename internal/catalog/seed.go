package catalog

import "github.com/shopspring/decimal"

func strPtr(s string) *string { return &s }

// Seed returns the mock electronics inventory the storefront ships with.
func Seed() []Product {
	return []Product{
		{
			ID:           "vx-1001",
			Name:         "Nimbus X1 Smartphone",
			Brand:        "Nimbus",
			Category:     "smartphones",
			Condition:    "new",
			Rating:       4.6,
			ImageURL:     strPtr("/images/nimbus-x1.webp"),
			DisplayPrice: "$999.00",
			RawPrice:     decimal.NewFromInt(999),
			Colors:       []string{"Obsidian", "Glacier", "Sandstone"},
			StorageTiers: []string{"128GB", "256GB", "512GB"},
		},
		{
			ID:           "vx-1002",
			Name:         "Nimbus X1 Lite",
			Brand:        "Nimbus",
			Category:     "smartphones",
			Condition:    "new",
			Rating:       4.3,
			ImageURL:     strPtr("/images/nimbus-x1-lite.webp"),
			DisplayPrice: "$649.00",
			RawPrice:     decimal.NewFromInt(649),
			Colors:       []string{"Obsidian", "Coral"},
			StorageTiers: []string{"128GB", "256GB"},
		},
		{
			ID:           "vx-2001",
			Name:         "AeroBook Pro 14",
			Brand:        "Aero",
			Category:     "laptops",
			Condition:    "new",
			Rating:       4.8,
			ImageURL:     strPtr("/images/aerobook-pro-14.webp"),
			DisplayPrice: "$1,899.00",
			RawPrice:     decimal.NewFromInt(1899),
			Colors:       []string{"Space Gray", "Silver"},
			StorageTiers: []string{"512GB", "1TB", "2TB"},
		},
		{
			ID:           "vx-2002",
			Name:         "AeroBook Air 13",
			Brand:        "Aero",
			Category:     "laptops",
			Condition:    "refurbished",
			Rating:       4.4,
			ImageURL:     strPtr("/images/aerobook-air-13.webp"),
			DisplayPrice: "$899.00",
			RawPrice:     decimal.NewFromInt(899),
			Colors:       []string{"Silver", "Midnight"},
			StorageTiers: []string{"256GB", "512GB"},
		},
		{
			ID:           "vx-3001",
			Name:         "PulseBuds ANC",
			Brand:        "Pulse",
			Category:     "audio",
			Condition:    "new",
			Rating:       4.5,
			ImageURL:     strPtr("/images/pulsebuds-anc.webp"),
			DisplayPrice: "$199.00",
			RawPrice:     decimal.NewFromInt(199),
			Colors:       []string{"Black", "White"},
		},
		{
			ID:           "vx-3002",
			Name:         "Pulse Studio Over-Ear",
			Brand:        "Pulse",
			Category:     "audio",
			Condition:    "open-box",
			Rating:       4.7,
			ImageURL:     strPtr("/images/pulse-studio.webp"),
			DisplayPrice: "$349.00",
			RawPrice:     decimal.NewFromInt(349),
			Colors:       []string{"Black", "Navy", "Cream"},
		},
		{
			ID:           "vx-4001",
			Name:         "VistaView 55\" OLED TV",
			Brand:        "VistaView",
			Category:     "televisions",
			Condition:    "new",
			Rating:       4.9,
			ImageURL:     strPtr("/images/vistaview-55-oled.webp"),
			DisplayPrice: "$1,499.00",
			RawPrice:     decimal.NewFromInt(1499),
		},
		{
			ID:           "vx-5001",
			Name:         "Torque GX Gaming Console",
			Brand:        "Torque",
			Category:     "gaming",
			Condition:    "new",
			Rating:       4.8,
			ImageURL:     strPtr("/images/torque-gx.webp"),
			DisplayPrice: "$499.00",
			RawPrice:     decimal.NewFromInt(499),
			Colors:       []string{"Black", "White"},
			StorageTiers: []string{"1TB"},
		},
		{
			ID:           "vx-6001",
			Name:         "Volt Charge 65W GaN Charger",
			Brand:        "Volt",
			Category:     "accessories",
			Condition:    "new",
			Rating:       4.2,
			ImageURL:     strPtr("/images/volt-charge-65.webp"),
			DisplayPrice: "$39.99",
			RawPrice:     decimal.RequireFromString("39.99"),
			Colors:       []string{"White"},
		},
		{
			ID:           "vx-7001",
			Name:         "Glide S2 Smartwatch",
			Brand:        "Glide",
			Category:     "wearables",
			Condition:    "new",
			Rating:       4.1,
			ImageURL:     strPtr("/images/glide-s2.webp"),
			DisplayPrice: "$279.00",
			RawPrice:     decimal.NewFromInt(279),
			Colors:       []string{"Graphite", "Rose Gold"},
		},
	}
}
