package config

import "github.com/abtonmoy/vault-finance/internal/domain"

// CategoryKeywords binds one category to the keywords that vote for it
// during keyword-scoring fallback. Slice order is category declaration
// order, which breaks scoring ties.
type CategoryKeywords struct {
	Category domain.Category `yaml:"category"`
	Keywords []string        `yaml:"keywords"`
}

// Merchant maps a known merchant name to its category. Matching is fuzzy:
// the best of substring-overlap and token-order-insensitive similarity
// against the normalized description, accepted at or above the configured
// threshold.
type Merchant struct {
	Name     string          `yaml:"name"`
	Category domain.Category `yaml:"category"`
}

// DefaultCategoryKeywords returns the built-in spending taxonomy keywords.
// Callers may extend or replace the table; the categorizer treats it as
// immutable after construction.
func DefaultCategoryKeywords() []CategoryKeywords {
	return []CategoryKeywords{
		{domain.CategoryFoodDining, []string{
			"restaurant", "cafe", "bistro", "diner", "grill", "kitchen", "eatery", "pizzeria", "buffet",
			"mcdonalds", "burger king", "kfc", "taco bell", "subway", "chipotle", "panera", "chick-fil-a",
			"starbucks", "dunkin", "coffee", "espresso", "latte",
			"doordash", "ubereats", "grubhub", "postmates", "seamless", "delivery",
			"bar", "pub", "brewery", "tavern", "lounge", "wine bar",
			"dining", "food", "pizza",
		}},
		{domain.CategoryGroceries, []string{
			"walmart", "target", "costco", "sams club", "bjs", "aldi", "food lion",
			"whole foods", "sprouts", "fresh market", "trader joes",
			"grocery", "market", "supermarket", "food store", "safeway", "kroger", "publix",
		}},
		{domain.CategoryTransportation, []string{
			"shell", "exxon", "bp", "chevron", "mobil", "citgo", "gas station", "fuel", "gas",
			"uber", "lyft", "taxi", "cab",
			"parking", "garage", "meter", "valet",
			"metro", "bus", "train", "transit", "mta", "bart",
			"airline", "airways", "flight", "delta", "american airlines", "united", "southwest",
			"oil change", "tire", "mechanic", "auto repair", "car wash",
		}},
		{domain.CategoryShopping, []string{
			"amazon", "ebay", "paypal", "apple.com", "google play",
			"target", "walmart", "kohls", "jcpenney", "sears", "nordstrom",
			"best buy", "apple store", "microsoft", "gamestop", "bestbuy",
			"gap", "old navy", "h&m", "zara", "nike", "adidas",
			"home depot", "lowes", "ikea", "bed bath beyond", "pier 1",
			"store", "shop", "retail", "purchase", "buy", "mall", "outlet",
		}},
		{domain.CategoryBills, []string{
			"electric", "electricity", "water", "gas company", "utility", "bill", "payment",
			"verizon", "att", "t-mobile", "sprint", "comcast", "xfinity", "internet", "cable", "phone",
			"insurance", "allstate", "geico", "progressive", "state farm",
			"rent", "mortgage", "property management", "hoa",
		}},
		{domain.CategoryHealthcare, []string{
			"hospital", "medical center", "clinic", "doctor", "physician", "medical", "health",
			"cvs", "walgreens", "rite aid", "pharmacy", "prescription",
			"dental", "dentist", "orthodontist",
			"eye care", "optometry", "vision", "eyeglasses",
		}},
		{domain.CategoryEntertainment, []string{
			"netflix", "hulu", "disney+", "amazon prime", "spotify", "apple music",
			"movie", "cinema", "theater", "amc", "regal",
			"steam", "playstation", "xbox", "nintendo", "gaming", "game",
			"gym", "fitness", "yoga", "pilates", "planet fitness", "24 hour fitness",
		}},
		{domain.CategoryBankingFees, []string{
			"fee", "charge", "overdraft", "maintenance", "service charge", "wire fee",
			"atm", "cash withdrawal", "atm fee",
			"interest charge", "finance charge", "late fee",
		}},
		{domain.CategoryIncome, []string{
			"payroll", "salary", "direct deposit", "paycheck", "wages",
			"refund", "tax refund", "dividend", "interest earned", "cashback", "reward",
			"deposit", "reversal", "return", "credit", "income",
		}},
		{domain.CategoryPersonalCare, []string{
			"salon", "spa", "barber", "nail", "massage",
			"cosmetics", "skincare", "shampoo",
		}},
		{domain.CategoryEducation, []string{
			"university", "college", "school", "tuition",
			"bookstore", "textbook", "school supply",
		}},
		{domain.CategoryTravel, []string{
			"hotel", "motel", "resort", "airbnb", "booking.com",
			"airline", "train", "bus ticket", "car rental",
		}},
	}
}

// DefaultMerchants returns the built-in known-merchant table used by the
// fuzzy merchant lookup.
func DefaultMerchants() []Merchant {
	return []Merchant{
		// Online / tech
		{"amazon", domain.CategoryShopping},
		{"amzn", domain.CategoryShopping},
		{"apple", domain.CategoryShopping},
		{"microsoft", domain.CategoryShopping},
		{"google", domain.CategoryShopping},
		{"paypal", domain.CategoryTransfer},

		// Retail
		{"walmart", domain.CategoryGroceries},
		{"target", domain.CategoryShopping},
		{"costco", domain.CategoryGroceries},
		{"best buy", domain.CategoryShopping},
		{"home depot", domain.CategoryShopping},
		{"lowes", domain.CategoryShopping},

		// Food
		{"starbucks", domain.CategoryFoodDining},
		{"mcdonalds", domain.CategoryFoodDining},
		{"subway", domain.CategoryFoodDining},
		{"chipotle", domain.CategoryFoodDining},
		{"pizza", domain.CategoryFoodDining},

		// Gas / transportation
		{"shell", domain.CategoryTransportation},
		{"exxon", domain.CategoryTransportation},
		{"chevron", domain.CategoryTransportation},
		{"bp", domain.CategoryTransportation},
		{"uber", domain.CategoryTransportation},
		{"lyft", domain.CategoryTransportation},

		// Entertainment
		{"netflix", domain.CategoryEntertainment},
		{"spotify", domain.CategoryEntertainment},
		{"hulu", domain.CategoryEntertainment},
		{"disney", domain.CategoryEntertainment},

		// Healthcare / pharmacy
		{"walgreens", domain.CategoryHealthcare},
		{"cvs", domain.CategoryHealthcare},
		{"rite aid", domain.CategoryHealthcare},
		{"pharmacy", domain.CategoryHealthcare},
	}
}
