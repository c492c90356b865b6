package cardwise

import "strings"

// CategoryGeneral is the catch-all spending category every non-empty query
// eventually resolves to.
const CategoryGeneral = "general"

// SpendingCategory is a spending bucket used to select the best card for a
// purchase. The set is static and loaded at startup.
type SpendingCategory struct {
	ID          string
	Name        string
	Description string
	Icon        string
}

// categories is the fixed catalog, in iteration order. Order matters: the
// matcher returns the first direct hit.
var categories = []SpendingCategory{
	{ID: "dining", Name: "Dining", Icon: "🍽️", Description: "Restaurants, delivery, takeout"},
	{ID: "travel_flights", Name: "Flights", Icon: "✈️", Description: "Airline tickets"},
	{ID: "travel_hotels", Name: "Hotels", Icon: "🏨", Description: "Hotel bookings"},
	{ID: "groceries", Name: "Groceries", Icon: "🛒", Description: "Supermarkets & grocery stores"},
	{ID: "gas", Name: "Gas", Icon: "⛽", Description: "Gas stations"},
	{ID: "streaming", Name: "Streaming", Icon: "📺", Description: "Netflix, Spotify, etc."},
	{ID: "online_shopping", Name: "Online Shopping", Icon: "🛍️", Description: "Amazon, general online"},
	{ID: "transit", Name: "Transit", Icon: "🚇", Description: "Subway, bus, rideshare"},
	{ID: "drugstore", Name: "Drugstore", Icon: "💊", Description: "Pharmacies & drugstores"},
	{ID: CategoryGeneral, Name: "Everything Else", Icon: "💳", Description: "All other purchases"},
}

// Categories returns all spending categories in catalog order.
func Categories() []SpendingCategory {
	out := make([]SpendingCategory, len(categories))
	copy(out, categories)
	return out
}

// CategoryByID returns the category with the given id.
func CategoryByID(id string) (SpendingCategory, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return SpendingCategory{}, false
}

// merchantAliases maps well-known merchant and keyword strings to category
// ids. It is an ordered list scanned linearly: when aliases overlap, the one
// appearing first wins. Matching is bidirectional containment, so "starbucks
// reserve" hits "starbucks" and "uber" hits "uber eats".
var merchantAliases = []struct {
	alias      string
	categoryID string
}{
	{"amazon", "online_shopping"}, {"target", "online_shopping"}, {"ebay", "online_shopping"},
	{"etsy", "online_shopping"}, {"best buy", "online_shopping"}, {"bestbuy", "online_shopping"},
	{"walmart", "groceries"}, {"costco", "groceries"}, {"trader joe", "groceries"},
	{"whole foods", "groceries"}, {"aldi", "groceries"}, {"kroger", "groceries"},
	{"safeway", "groceries"}, {"publix", "groceries"}, {"wegmans", "groceries"},
	{"uber eats", "dining"}, {"doordash", "dining"}, {"grubhub", "dining"},
	{"chipotle", "dining"}, {"starbucks", "dining"}, {"mcdonald", "dining"},
	{"chick-fil-a", "dining"}, {"panera", "dining"}, {"sweetgreen", "dining"},
	{"cheesecake factory", "dining"}, {"restaurant", "dining"}, {"dinner", "dining"},
	{"lunch", "dining"}, {"brunch", "dining"}, {"coffee", "dining"}, {"cafe", "dining"},
	{"netflix", "streaming"}, {"spotify", "streaming"}, {"hulu", "streaming"},
	{"disney", "streaming"}, {"hbo", "streaming"}, {"apple tv", "streaming"},
	{"peacock", "streaming"}, {"max", "streaming"}, {"youtube", "streaming"},
	{"delta", "travel_flights"}, {"united", "travel_flights"}, {"american airlines", "travel_flights"},
	{"southwest", "travel_flights"}, {"jetblue", "travel_flights"}, {"flight", "travel_flights"}, {"airline", "travel_flights"},
	{"hilton", "travel_hotels"}, {"marriott", "travel_hotels"}, {"hyatt", "travel_hotels"},
	{"airbnb", "travel_hotels"}, {"hotel", "travel_hotels"}, {"vrbo", "travel_hotels"},
	{"shell", "gas"}, {"exxon", "gas"}, {"bp", "gas"}, {"chevron", "gas"}, {"fuel", "gas"},
	{"lyft", "transit"}, {"uber", "transit"}, {"metro", "transit"}, {"subway", "transit"},
	{"cvs", "drugstore"}, {"walgreens", "drugstore"}, {"pharmacy", "drugstore"},
}

// MatchCategory resolves a free-text query or merchant name to a spending
// category. An empty query returns nil, meaning "clear selection". Any other
// query resolves, in order: direct containment against category names and
// descriptions (either string containing the other, first category in catalog
// order wins), then the merchant alias table (bidirectional containment,
// first alias wins), then the general catch-all. The function never fails on
// non-empty input.
func MatchCategory(query string) *SpendingCategory {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	for _, cat := range categories {
		name := strings.ToLower(cat.Name)
		desc := strings.ToLower(cat.Description)
		if strings.Contains(name, q) || strings.Contains(q, name) ||
			strings.Contains(desc, q) || strings.Contains(q, desc) {
			return &cat
		}
	}

	for _, ma := range merchantAliases {
		if strings.Contains(ma.alias, q) || strings.Contains(q, ma.alias) {
			if cat, ok := CategoryByID(ma.categoryID); ok {
				return &cat
			}
		}
	}

	general, _ := CategoryByID(CategoryGeneral)
	return &general
}
