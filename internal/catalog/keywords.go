package catalog

// Keywords maps category id → lowercase keywords matched as substrings of a
// transaction description. Loaded once; multiple hits for the same category
// accumulate during scoring.
var Keywords = map[string][]string{
	FoodDiningID: {
		"food", "restaurant", "lunch", "dinner", "breakfast", "cafe", "coffee", "grocery",
		"groceries", "supermarket", "takeout", "meal", "snack", "pizza", "burger", "bakery",
		"deli", "market", "bar", "pub", "drink", "dining",
	},
	TransportationID: {
		"uber", "lyft", "taxi", "cab", "gas", "fuel", "petrol", "car", "auto", "vehicle",
		"bus", "train", "subway", "metro", "transport", "fare", "ride", "commute", "toll",
		"parking", "bicycle", "bike", "scooter", "rental", "maintenance", "repair", "service",
	},
	HousingID: {
		"rent", "mortgage", "home", "house", "apartment", "flat", "condo", "lease", "property",
		"real estate", "housing", "accommodation", "residence", "tenant", "landlord", "deposit",
		"maintenance", "repair", "furniture", "decor", "renovation", "improvement",
	},
	EntertainmentID: {
		"movie", "netflix", "spotify", "entertainment", "theater", "cinema", "concert", "show",
		"ticket", "event", "game", "gaming", "subscription", "streaming", "music", "video",
		"play", "fun", "hobby", "leisure", "recreation", "amusement", "party", "festival",
	},
	"5": {
		"shopping", "store", "mall", "retail", "purchase", "buy", "clothes", "clothing", "apparel",
		"fashion", "shoes", "accessory", "accessories", "electronics", "gadget", "device", "appliance",
		"furniture", "home goods", "decor", "gift", "online", "amazon", "ebay", "etsy",
	},
	"6": {
		"utility", "utilities", "electric", "electricity", "water", "gas", "power", "energy",
		"internet", "wifi", "broadband", "phone", "mobile", "cell", "bill", "service", "provider",
		"cable", "tv", "trash", "garbage", "waste", "sewage", "heating", "cooling", "hvac",
	},
	"7": {
		"health", "medical", "doctor", "physician", "hospital", "clinic", "dentist", "dental",
		"vision", "eye", "prescription", "medicine", "medication", "pharmacy", "drug", "vitamin",
		"supplement", "fitness", "gym", "workout", "exercise", "therapy", "counseling", "insurance",
	},
	"8": {
		"education", "school", "college", "university", "tuition", "course", "class", "lesson",
		"training", "workshop", "seminar", "book", "textbook", "supplies", "student", "loan",
		"scholarship", "degree", "certificate", "program", "study", "learning", "teaching",
	},
	"9": {
		"travel", "trip", "vacation", "holiday", "flight", "plane", "airline", "hotel", "motel",
		"lodging", "accommodation", "resort", "booking", "reservation", "tour", "cruise", "beach",
		"sightseeing", "tourism", "passport", "visa", "luggage", "baggage", "souvenir",
	},
	SalaryID: {
		"salary", "paycheck", "wage", "income", "pay", "earnings", "compensation", "remuneration",
		"stipend", "employment", "job", "work", "career", "profession", "occupation", "bonus",
		"commission", "overtime", "allowance", "benefit",
	},
	"12": {
		"freelance", "contract", "gig", "project", "client", "customer", "service", "consulting",
		"consultation", "advisor", "independent", "self-employed", "business", "entrepreneur",
		"startup", "venture", "side hustle", "moonlighting", "commission",
	},
	"13": {
		"investment", "dividend", "interest", "stock", "bond", "mutual fund", "etf", "security",
		"portfolio", "asset", "equity", "share", "return", "profit", "gain", "yield", "appreciation",
		"capital", "market", "trading", "broker", "crypto", "bitcoin", "ethereum",
	},
	"14": {
		"gift", "present", "donation", "charity", "contribution", "grant", "scholarship", "award",
		"prize", "bonus", "inheritance", "estate", "will", "bequest", "endowment", "offering",
		"gratuity", "tip", "birthday", "holiday", "celebration", "congratulation",
	},
}
