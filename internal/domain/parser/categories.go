package parser

// CategoryID identifies a spending bucket. The set is closed: every value the
// parser emits has an entry in Categories for display purposes.
type CategoryID string

const (
	CategoryFood          CategoryID = "food"
	CategoryTransport     CategoryID = "transport"
	CategoryShopping      CategoryID = "shopping"
	CategoryBills         CategoryID = "bills"
	CategoryEntertainment CategoryID = "entertainment"
	CategoryHealth        CategoryID = "health"
	CategoryIncome        CategoryID = "income"
	CategoryOther         CategoryID = "other"
)

// CategoryKeywords binds a category to its ordered, case-insensitive keyword
// list. Declaration order is a contract: classification is first-match, so
// reordering entries (or keywords within an entry) changes outcomes for
// descriptions that mention more than one category.
type CategoryKeywords struct {
	Category CategoryID
	Keywords []string
}

// DefaultKeywordTable returns the built-in keyword table.
// The income entry is reserved for the direction classifier and the other
// entry is the terminal fallback; neither participates in keyword matching.
func DefaultKeywordTable() []CategoryKeywords {
	return []CategoryKeywords{
		{Category: CategoryFood, Keywords: []string{
			// Food delivery
			"swiggy", "zomato", "uber eats", "ubereats", "dominos", "pizza hut", "pizzahut",
			"mcdonalds", "mcd", "burger king", "kfc", "subway", "starbucks", "cafe",
			// Restaurants
			"restaurant", "dining", "food", "kitchen", "biryani", "curry", "hotel",
			"bakery", "eatery", "diner", "bistro", "canteen",
			// Groceries
			"bigbasket", "blinkit", "zepto", "instamart", "grofers", "dmart", "reliance fresh",
			"grocery", "supermarket", "vegetables", "fruits",
		}},
		{Category: CategoryTransport, Keywords: []string{
			// Ride sharing
			"uber", "ola", "rapido", "meru", "auto", "taxi", "cab",
			// Fuel
			"petrol", "diesel", "fuel", "indian oil", "iocl", "hp", "bharat petroleum", "bpcl",
			"shell", "reliance petrol", "essar",
			// Public transport
			"metro", "railway", "irctc", "bus", "redbus", "abhibus",
			// Parking & tolls
			"parking", "fastag", "toll", "paytm fastag",
		}},
		{Category: CategoryShopping, Keywords: []string{
			// E-commerce
			"amazon", "flipkart", "myntra", "ajio", "meesho", "snapdeal", "tata cliq",
			"nykaa", "purplle", "mamaearth",
			// Electronics
			"croma", "reliance digital", "vijay sales", "apple", "samsung",
			// Fashion
			"zara", "h&m", "uniqlo", "pantaloons", "lifestyle", "shoppers stop", "max",
			// General
			"mall", "shop", "store", "mart", "retail", "purchase",
		}},
		{Category: CategoryBills, Keywords: []string{
			// Utilities
			"electricity", "electric", "power", "bescom", "tata power", "adani power",
			"gas", "mahanagar gas", "piped gas", "lpg", "indane", "bharat gas",
			"water", "water board",
			// Telecom
			"jio", "airtel", "vi", "vodafone", "idea", "bsnl", "recharge", "prepaid", "postpaid",
			// Internet
			"broadband", "wifi", "internet", "act fibernet", "hathway",
			// Insurance
			"insurance", "lic", "hdfc life", "icici prudential", "premium",
			// Rent & EMI
			"rent", "emi", "loan", "housing",
		}},
		{Category: CategoryEntertainment, Keywords: []string{
			// Streaming
			"netflix", "prime video", "amazon prime", "hotstar", "disney", "sony liv",
			"zee5", "voot", "jiocinema", "mubi", "apple tv",
			// Music
			"spotify", "gaana", "jiosaavn", "wynk", "apple music", "youtube music",
			// Gaming
			"steam", "playstation", "xbox", "nintendo", "epic games", "gaming",
			// Movies & events
			"bookmyshow", "paytm movies", "pvr", "inox", "cinepolis", "movie", "cinema",
			"concert", "event", "ticket",
			// Subscriptions
			"subscription", "membership",
		}},
		{Category: CategoryHealth, Keywords: []string{
			// Pharmacy
			"apollo", "netmeds", "1mg", "pharmeasy", "medplus", "pharmacy", "medicine",
			"medical", "drug", "tablet",
			// Healthcare
			"hospital", "clinic", "doctor", "consultation", "diagnostic", "lab", "pathology",
			"healthcare", "health", "treatment",
			// Fitness
			"gym", "fitness", "yoga", "cult.fit", "cult fit", "gold gym",
			// Wellness
			"spa", "massage", "wellness", "ayurveda",
		}},
		{Category: CategoryIncome, Keywords: []string{
			// Salary & payments
			"salary", "credited", "received", "payment received", "refund",
			"cashback", "reward", "bonus", "incentive", "commission",
			// Transfers
			"transferred to your", "money received", "upi cr", "imps cr", "neft cr",
		}},
		{Category: CategoryOther, Keywords: nil},
	}
}

// Category carries the display metadata shared with UI consumers.
type Category struct {
	ID    CategoryID `json:"id"`
	Name  string     `json:"name"`
	Icon  string     `json:"icon"`
	Color string     `json:"color"`
}

// Categories returns the display table for all category IDs, in the same
// order the classifier evaluates them.
func Categories() []Category {
	return []Category{
		{ID: CategoryFood, Name: "Food & Dining", Icon: "fast-food", Color: "#FF6B6B"},
		{ID: CategoryTransport, Name: "Transport", Icon: "car", Color: "#4ECDC4"},
		{ID: CategoryShopping, Name: "Shopping", Icon: "bag-handle", Color: "#FFE66D"},
		{ID: CategoryBills, Name: "Bills & Utilities", Icon: "receipt", Color: "#95E1D3"},
		{ID: CategoryEntertainment, Name: "Entertainment", Icon: "game-controller", Color: "#DDA0DD"},
		{ID: CategoryHealth, Name: "Health", Icon: "medical", Color: "#98D8C8"},
		{ID: CategoryIncome, Name: "Income", Icon: "wallet", Color: "#00E676"},
		{ID: CategoryOther, Name: "Other", Icon: "ellipsis-horizontal", Color: "#8E8E93"},
	}
}
