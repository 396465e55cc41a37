// Package seeders holds the fixed data written into an empty store.
package seeders

import "github.com/shashiranjanraj/storefront/app/models"

// Products returns the six catalog entries seeded on first start.
// A fresh slice is returned on every call.
func Products() []models.Product {
	return []models.Product{
		{
			ID: 1, Name: "Premium Wireless Headphones", Price: 129.99, Rating: 4.5, Reviews: 124,
			Description: "Premium wireless headphones with active noise cancellation and 30-hour battery life. Features crystal-clear audio quality and comfortable over-ear design perfect for long listening sessions.",
			ImageURL:    "https://images.unsplash.com/photo-1484704849700-f032a568e944?auto=format&fit=crop&w=800&q=80",
		},
		{
			ID: 2, Name: "Smart Watch", Price: 299.99, Rating: 4.8, Reviews: 89,
			Description: "Advanced smartwatch with health tracking, GPS, and smartphone notifications. Water-resistant design with a vibrant AMOLED display and comprehensive fitness monitoring capabilities.",
			ImageURL:    "https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&w=800&q=60",
		},
		{
			ID: 3, Name: "Laptop Stand", Price: 49.99, Rating: 4.3, Reviews: 56,
			Description: "Ergonomic aluminum laptop stand that elevates your screen to eye level. Adjustable height and angle settings help reduce neck strain and improve posture during long work sessions.",
			ImageURL:    "https://images.unsplash.com/photo-1515879218367-8466d910aaa4?auto=format&fit=crop&w=800&q=60",
		},
		{
			ID: 4, Name: "Phone Case", Price: 19.99, Rating: 4.6, Reviews: 210,
			Description: "Durable protective phone case with shock-absorbing technology. Features precise cutouts for all ports and buttons, maintaining full device functionality while providing maximum protection.",
			ImageURL:    "https://images.unsplash.com/photo-1580910051074-7e6d56d3c5b2?auto=format&fit=crop&w=800&q=60",
		},
		{
			ID: 5, Name: "Bluetooth Speaker", Price: 89.99, Rating: 4.7, Reviews: 142,
			Description: "Portable Bluetooth speaker with 360-degree sound and 12-hour battery life. Waterproof design makes it perfect for outdoor adventures, parties, and everyday use.",
			ImageURL:    "https://images.unsplash.com/photo-1512446816042-444d641267d4?auto=format&fit=crop&w=800&q=60",
		},
		{
			ID: 6, Name: "USB-C Cable", Price: 14.99, Rating: 4.4, Reviews: 98,
			Description: "High-speed USB-C charging cable with fast charging support. Durable braided design resists tangling and wear, ensuring reliable connections for all your devices.",
			ImageURL:    "https://images.unsplash.com/photo-1583863788434-e58a36330f4f?auto=format&fit=crop&w=800&q=60",
		},
	}
}
