package seed

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/GTDGit/multitool_api/internal/models"
)

type categoryProfile struct {
	subCategories []string
	brands        []string
	tags          []string
	minPrice      float64
	maxPrice      float64
	name          func(f *gofakeit.Faker, sub string) string
}

var commonTags = []string{"new-arrival", "bestseller", "free-shipping"}

func styled(styles ...string) func(*gofakeit.Faker, string) string {
	return func(f *gofakeit.Faker, sub string) string {
		return f.RandomString(styles) + " " + sub
	}
}

var profiles = map[models.Category]categoryProfile{
	models.CategoryElectronics: {
		subCategories: []string{"Laptop", "Headphones", "Smartphone", "Camera", "Smartwatch"},
		brands:        []string{"Sony", "Apple", "Samsung", "Dell", "Canon", "Bose"},
		tags:          []string{"latest-tech", "energy-efficient", "warranty-included", "fast-charging"},
		minPrice:      99,
		maxPrice:      1999,
		name: func(f *gofakeit.Faker, sub string) string {
			brand := f.RandomString([]string{"Sony", "Apple", "Samsung", "Dell", "Canon", "Bose"})
			model := f.RandomString([]string{"Pro", "Max", "Ultra", "Plus", "Elite", "Premium"})
			return fmt.Sprintf("%s %s %s", brand, sub, model)
		},
	},
	models.CategoryFashion: {
		subCategories: []string{"T-Shirt", "Dress", "Jeans", "Sneakers", "Watch"},
		brands:        []string{"Nike", "Zara", "Uniqlo", "Adidas", "Gucci", "H&M"},
		tags:          []string{"trending", "seasonal", "comfortable", "stylish"},
		minPrice:      19.99,
		maxPrice:      299.99,
		name: func(f *gofakeit.Faker, sub string) string {
			style := f.RandomString([]string{"Classic", "Modern", "Vintage", "Casual", "Premium", "Designer"})
			if sub == "Watch" {
				return style + " " + sub
			}
			color := f.RandomString([]string{"Black", "White", "Blue", "Red", "Gray", "Navy"})
			return fmt.Sprintf("%s %s %s", style, color, sub)
		},
	},
	models.CategoryHome: {
		subCategories: []string{"Kitchen Set", "Bedding Set", "Wall Decor", "Furniture", "Lamp"},
		brands:        []string{"IKEA", "MUJI", "Williams Sonoma", "Crate & Barrel"},
		tags:          []string{"modern", "eco-friendly", "space-saving", "easy-clean"},
		minPrice:      29.99,
		maxPrice:      799.99,
		name:          styled("Modern", "Scandinavian", "Rustic", "Contemporary", "Minimalist"),
	},
	models.CategoryBeauty: {
		subCategories: []string{"Skincare Set", "Makeup Kit", "Perfume", "Hair Care", "Beauty Tools"},
		brands:        []string{"L'Oréal", "Clinique", "The Ordinary", "Glossier", "Shiseido"},
		tags:          []string{"organic", "vegan", "dermatologist-tested", "paraben-free"},
		minPrice:      12.99,
		maxPrice:      199.99,
		name:          styled("Hydrating", "Anti-Aging", "Brightening", "Nourishing", "Revitalizing", "Professional"),
	},
	models.CategoryBooks: {
		subCategories: []string{"Fiction", "Non-Fiction", "Sci-Fi", "Mystery", "Self-Help"},
		brands:        []string{"Penguin", "HarperCollins", "Simon & Schuster", "Macmillan"},
		tags:          []string{"bestseller", "recommended", "award-winning", "must-read"},
		minPrice:      9.99,
		maxPrice:      39.99,
		name: func(f *gofakeit.Faker, sub string) string {
			adj := f.RandomString([]string{"The Complete", "The Essential", "The Ultimate", "The Art of", "Mastering"})
			topic := f.RandomString([]string{"Success", "Mindfulness", "Leadership", "Creativity", "Wisdom", "Adventure"})
			return fmt.Sprintf("%s %s - %s Book", adj, topic, sub)
		},
	},
	models.CategorySports: {
		subCategories: []string{"Fitness Equipment", "Outdoor Gear", "Team Sports", "Yoga Mat", "Cycling Gear"},
		brands:        []string{"Nike", "Adidas", "The North Face", "Yonex", "Under Armour"},
		tags:          []string{"performance", "durable", "lightweight", "weather-resistant"},
		minPrice:      24.99,
		maxPrice:      499.99,
		name:          styled("Pro", "Elite", "Performance", "Training", "Professional", "Advanced"),
	},
	models.CategoryToys: {
		subCategories: []string{"Educational Toy", "Action Figure", "Board Game", "Doll", "Puzzle"},
		brands:        []string{"LEGO", "Mattel", "Hasbro", "Fisher-Price"},
		tags:          []string{"educational", "age-appropriate", "safe", "award-winning"},
		minPrice:      14.99,
		maxPrice:      149.99,
		name: func(f *gofakeit.Faker, sub string) string {
			age := f.RandomString([]string{"3+", "5+", "8+", "10+"})
			kind := f.RandomString([]string{"Learning", "Creative", "Fun", "Interactive", "Classic"})
			return fmt.Sprintf("%s %s (Age %s)", kind, sub, age)
		},
	},
	models.CategoryGrocery: {
		subCategories: []string{"Snacks", "Beverages", "Organic Food", "Bakery", "International Food"},
		brands:        []string{"Nestlé", "Coca-Cola", "Kikkoman", "Whole Foods"},
		tags:          []string{"organic", "non-gmo", "fresh", "premium-quality"},
		minPrice:      3.99,
		maxPrice:      49.99,
		name: func(f *gofakeit.Faker, sub string) string {
			kind := f.RandomString([]string{"Premium", "Organic", "Natural", "Gourmet", "Fresh", "Artisan"})
			size := f.RandomString([]string{"Pack", "Bundle", "Box", "Variety Pack"})
			return fmt.Sprintf("%s %s %s", kind, sub, size)
		},
	},
	models.CategoryAutomotive: {
		subCategories: []string{"Car Tools", "Car Cleaning Kit", "Car Electronics", "Tires", "Interior Accessories"},
		brands:        []string{"Bosch", "3M", "Michelin", "Armor All"},
		tags:          []string{"oem-quality", "easy-install", "universal-fit", "long-lasting"},
		minPrice:      19.99,
		maxPrice:      599.99,
		name:          styled("Professional", "Premium", "Heavy-Duty", "High-Performance", "Universal"),
	},
	models.CategoryHealth: {
		subCategories: []string{"Supplements", "Vitamins", "First Aid Kit", "Personal Care", "Mobility Aid"},
		brands:        []string{"Nature Made", "CVS Health", "TheraBand", "Omron"},
		tags:          []string{"clinically-tested", "natural", "doctor-recommended", "gluten-free"},
		minPrice:      9.99,
		maxPrice:      99.99,
		name:          styled("Daily", "Advanced", "Complete", "Essential", "Premium", "Natural"),
	},
}

var features = []string{
	"High-quality materials",
	"Excellent craftsmanship",
	"Modern design",
	"Durable construction",
	"Easy to use",
	"Great value",
}
