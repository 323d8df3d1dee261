package product

// SeedProducts is the demo catalog used by the seed command and the
// in-memory dev server. It covers every allowed category.
var SeedProducts = []Product{
	{
		Name:         "iPhone 15 Pro Max",
		Image:        "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=400&h=400&fit=crop",
		Description:  "The ultimate iPhone with titanium design, A17 Pro chip, and revolutionary camera system.",
		Price:        1199,
		CountInStock: 25,
		Category:     "Smartphones",
	},
	{
		Name:         "Samsung Galaxy S24 Ultra",
		Image:        "https://images.unsplash.com/photo-1610945265064-0e34e5519bbf?w=400&h=400&fit=crop",
		Description:  "Premium Android flagship with S Pen, 200MP camera, AI-powered features, and titanium frame.",
		Price:        1299,
		CountInStock: 20,
		Category:     "Smartphones",
	},
	{
		Name:         "Google Pixel 8 Pro",
		Image:        "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400&h=400&fit=crop",
		Description:  "AI-powered smartphone with Magic Eraser, Best Take, and 7 years of OS updates.",
		Price:        999,
		CountInStock: 30,
		Category:     "Smartphones",
	},
	{
		Name:         "MacBook Pro 16\" M3 Max",
		Image:        "https://images.unsplash.com/photo-1541807084-5c52b6b3adef?w=400&h=400&fit=crop",
		Description:  "Professional powerhouse with M3 Max chip, Liquid Retina XDR display, and up to 22 hours of battery life.",
		Price:        2499,
		CountInStock: 15,
		Category:     "Laptops",
	},
	{
		Name:         "Dell XPS 13 Plus",
		Image:        "https://images.unsplash.com/photo-1593642632823-8f785ba67e45?w=400&h=400&fit=crop",
		Description:  "Ultra-premium laptop with InfinityEdge display, 12th Gen Intel processors, and zero-lattice keyboard.",
		Price:        1399,
		CountInStock: 18,
		Category:     "Laptops",
	},
	{
		Name:         "iPad Pro 12.9\" M2",
		Image:        "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=400&h=400&fit=crop",
		Description:  "Professional tablet with M2 chip, Liquid Retina XDR display, and Apple Pencil support.",
		Price:        1099,
		CountInStock: 25,
		Category:     "Tablets",
	},
	{
		Name:         "Samsung Galaxy Tab S9 Ultra",
		Image:        "https://images.unsplash.com/photo-1561154464-82e9adf32764?w=400&h=400&fit=crop",
		Description:  "Premium Android tablet with 14.6\" AMOLED display, S Pen included, and DeX mode.",
		Price:        1199,
		CountInStock: 20,
		Category:     "Tablets",
	},
	{
		Name:         "Wireless Headphones",
		Image:        "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=400&fit=crop",
		Description:  "Bluetooth over-ear headphones with noise cancellation",
		Price:        1999,
		CountInStock: 5,
		Category:     "Audio",
	},
	{
		Name:         "Sony WH-1000XM5",
		Image:        "https://images.unsplash.com/photo-1583394838336-acd977736f90?w=400&h=400&fit=crop",
		Description:  "Industry-leading noise canceling headphones with exceptional sound quality and 30-hour battery.",
		Price:        399,
		CountInStock: 30,
		Category:     "Audio",
	},
	{
		Name:         "AirPods Pro 2nd Gen",
		Image:        "https://images.unsplash.com/photo-1606220945770-b5b6c2c55bf1?w=400&h=400&fit=crop",
		Description:  "Premium wireless earbuds with adaptive noise cancellation, spatial audio, and MagSafe charging case.",
		Price:        249,
		CountInStock: 50,
		Category:     "Audio",
	},
	{
		Name:         "Apple Watch Ultra 2",
		Image:        "https://images.unsplash.com/photo-1434493789847-2f02dc6ca35d?w=400&h=400&fit=crop",
		Description:  "Rugged smartwatch with titanium case, precision GPS, and advanced health monitoring.",
		Price:        799,
		CountInStock: 20,
		Category:     "Wearables",
	},
	{
		Name:         "Fitbit Sense 2",
		Image:        "https://images.unsplash.com/photo-1519741497674-611481863552?w=400&h=400&fit=crop",
		Description:  "Advanced health smartwatch with stress management, ECG, GPS, and multi-day battery life.",
		Price:        299,
		CountInStock: 35,
		Category:     "Wearables",
	},
	{
		Name:         "PlayStation 5 Slim",
		Image:        "https://images.unsplash.com/photo-1606144042614-b2417e99c4e3?w=400&h=400&fit=crop",
		Description:  "Next-gen gaming console with ultra-high speed SSD, ray tracing, and 3D audio.",
		Price:        499,
		CountInStock: 30,
		Category:     "Gaming",
	},
	{
		Name:         "Nintendo Switch OLED",
		Image:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=400&fit=crop",
		Description:  "Hybrid gaming console with vibrant 7-inch OLED screen, enhanced audio, and versatile play modes.",
		Price:        349,
		CountInStock: 40,
		Category:     "Gaming",
	},
	{
		Name:         "Magic Keyboard for iPad Pro",
		Image:        "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=400&h=400&fit=crop",
		Description:  "Premium keyboard with trackpad, backlit keys, and floating cantilever design.",
		Price:        349,
		CountInStock: 30,
		Category:     "Accessories",
	},
	{
		Name:         "Laptop Stand",
		Image:        "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=400&h=400&fit=crop",
		Description:  "Ergonomic aluminum laptop stand",
		Price:        999,
		CountInStock: 15,
		Category:     "Accessories",
	},
}
