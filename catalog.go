package cardwise

import "strings"

// cards is the static card catalog, in browse order. Earning rates are kept
// in their native unit; ranking happens on the normalized scale.
var cards = []Card{
	{
		ID: "venture-x", Name: "Venture X", Issuer: "Capital One", Network: "Visa",
		AnnualFee: USD(395),
		Color:     "#1a1a2e", Gradient: "linear-gradient(135deg, #1a1a2e 0%, #16213e 50%, #0f3460 100%)", AccentColor: "#e94560",
		DefaultSelected: true,
		Rates: map[string]CategoryRate{
			"dining":          {Rate: MilesRate(2)},
			"travel_flights":  {Rate: MilesRate(5), Portal: true, PortalNote: "via Capital One Travel"},
			"travel_hotels":   {Rate: MilesRate(10), Portal: true, PortalNote: "via Capital One Travel"},
			"groceries":       {Rate: MilesRate(2)},
			"gas":             {Rate: MilesRate(2)},
			"streaming":       {Rate: MilesRate(2)},
			"online_shopping": {Rate: MilesRate(2)},
			"transit":         {Rate: MilesRate(2)},
			"drugstore":       {Rate: MilesRate(2)},
			"general":         {Rate: MilesRate(2)},
		},
		Perks: []Perk{
			{ID: "vx-travel-credit", Name: "$300 Annual Travel Credit", Value: USD(300), Frequency: Annual, Description: "Capital One Travel bookings"},
			{ID: "vx-anniversary", Name: "10,000 Anniversary Miles", Value: USD(185), Frequency: Annual, Description: "~$185 value via transfer partners"},
			{ID: "vx-lounge", Name: "Priority Pass + Capital One Lounges", Frequency: Ongoing, Description: "Airport lounge access"},
			{ID: "vx-global-entry", Name: "Global Entry / TSA PreCheck Credit", Value: USD(120), Frequency: Quadrennial, Description: "Up to $120 every 4 years"},
			{ID: "vx-hertz", Name: "Hertz Rental Car Status", Frequency: Ongoing, Description: "President's Circle status"},
			{ID: "vx-premier-collection", Name: "Premier Collection Hotels", Frequency: Ongoing, Description: "Room upgrades, breakfast, credits"},
			{ID: "vx-rental-insurance", Name: "Primary Car Rental Insurance", Frequency: Ongoing, Description: "Covers damage/theft"},
			{ID: "vx-trip-insurance", Name: "Trip Cancellation Insurance", Frequency: Ongoing, Description: "Up to $5,000 per trip"},
			{ID: "vx-no-ftf", Name: "No Foreign Transaction Fees", Frequency: Ongoing},
		},
	},
	{
		ID: "sapphire-preferred", Name: "Sapphire Preferred", Issuer: "Chase", Network: "Visa",
		AnnualFee: USD(95),
		Color:     "#003087", Gradient: "linear-gradient(135deg, #003087 0%, #0052cc 50%, #1a6bff 100%)", AccentColor: "#4da3ff",
		DefaultSelected: true,
		Rates: map[string]CategoryRate{
			"dining":          {Rate: PointsRate(3)},
			"travel_flights":  {Rate: PointsRate(5), Portal: true, PortalNote: "via Chase Travel"},
			"travel_hotels":   {Rate: PointsRate(5), Portal: true, PortalNote: "via Chase Travel"},
			"groceries":       {Rate: PointsRate(3), Note: "Online grocery; excl. Target, Walmart"},
			"gas":             {Rate: PointsRate(1)},
			"streaming":       {Rate: PointsRate(3)},
			"online_shopping": {Rate: PointsRate(1)},
			"transit":         {Rate: PointsRate(2), Note: "Other travel"},
			"drugstore":       {Rate: PointsRate(1)},
			"general":         {Rate: PointsRate(1)},
		},
		Perks: []Perk{
			{ID: "csp-hotel-credit", Name: "$50 Annual Chase Travel Hotel Credit", Value: USD(50), Frequency: Annual},
			{ID: "csp-25-bonus", Name: "25% More Value via Chase Travel", Frequency: Ongoing, Description: "Points worth 1.25¢ each"},
			{ID: "csp-transfer", Name: "Transfer Partners (1:1)", Frequency: Ongoing, Description: "Airlines & hotels"},
			{ID: "csp-doordash", Name: "DoorDash DashPass", Frequency: Ongoing, Description: "Complimentary subscription"},
			{ID: "csp-instacart", Name: "Instacart+ Membership", Frequency: Annual, Description: "Through 2027"},
			{ID: "csp-rental-insurance", Name: "Primary Car Rental Insurance", Frequency: Ongoing},
			{ID: "csp-trip-insurance", Name: "Trip Cancellation Insurance", Frequency: Ongoing},
			{ID: "csp-purchase", Name: "Purchase Protection", Frequency: Ongoing},
			{ID: "csp-warranty", Name: "Extended Warranty", Frequency: Ongoing},
			{ID: "csp-no-ftf", Name: "No Foreign Transaction Fees", Frequency: Ongoing},
		},
	},
	{
		ID: "amex-platinum", Name: "Platinum Card", Issuer: "American Express", Network: "Amex",
		AnnualFee: USD(695),
		Color:     "#8c8c8c", Gradient: "linear-gradient(135deg, #a8a8a8 0%, #8c8c8c 30%, #6b6b6b 70%, #505050 100%)", AccentColor: "#c0c0c0",
		DefaultSelected: true,
		Rates: map[string]CategoryRate{
			"dining":          {Rate: PointsRate(1)},
			"travel_flights":  {Rate: PointsRate(5), Note: "Direct with airline or Amex Travel"},
			"travel_hotels":   {Rate: PointsRate(5), Portal: true, PortalNote: "Prepaid via Amex Travel"},
			"groceries":       {Rate: PointsRate(1)},
			"gas":             {Rate: PointsRate(1)},
			"streaming":       {Rate: PointsRate(1)},
			"online_shopping": {Rate: PointsRate(1)},
			"transit":         {Rate: PointsRate(1)},
			"drugstore":       {Rate: PointsRate(1)},
			"general":         {Rate: PointsRate(1)},
		},
		Perks: []Perk{
			{ID: "ap-airline", Name: "$200 Airline Fee Credit", Value: USD(200), Frequency: Annual, Description: "Incidentals on one selected airline"},
			{ID: "ap-hotel", Name: "$200 Hotel Credit (FHR/THC)", Value: USD(200), Frequency: Annual, Description: "Fine Hotels + Resorts / Hotel Collection"},
			{ID: "ap-entertainment", Name: "$240 Digital Entertainment Credit", Value: USD(240), Frequency: Monthly, MonthlyValue: USD(20), Description: "Disney+, Hulu, ESPN+, Peacock, Audible, SiriusXM, NYT"},
			{ID: "ap-uber", Name: "$200 Uber Credit", Value: USD(200), Frequency: Monthly, MonthlyValue: USD(15), Description: "$15/mo + $20 December bonus"},
			{ID: "ap-walmart", Name: "$155 Walmart+ Credit", Value: USD(155), Frequency: Annual, Description: "Walmart+ membership"},
			{ID: "ap-equinox", Name: "$300 Equinox Credit", Value: USD(300), Frequency: Monthly, MonthlyValue: USD(25), Description: "$25/month for Equinox membership"},
			{ID: "ap-global-entry", Name: "Global Entry / TSA PreCheck Credit", Value: USD(100), Frequency: Quadrennial, Description: "Up to $100 every 4 years"},
			{ID: "ap-centurion", Name: "Centurion Lounge Access", Frequency: Ongoing},
			{ID: "ap-priority-pass", Name: "Priority Pass Select", Frequency: Ongoing},
			{ID: "ap-delta-skyclub", Name: "Delta Sky Club (when flying Delta)", Frequency: Ongoing},
			{ID: "ap-fhr", Name: "Fine Hotels + Resorts Benefits", Frequency: Ongoing, Description: "Room upgrade, breakfast, late checkout, credits"},
			{ID: "ap-hilton", Name: "Hilton Honors Gold Status", Frequency: Ongoing},
			{ID: "ap-marriott", Name: "Marriott Bonvoy Gold Elite", Frequency: Ongoing},
			{ID: "ap-cell", Name: "Cell Phone Protection", Frequency: Ongoing, Description: "Up to $800, $50 deductible"},
			{ID: "ap-no-ftf", Name: "No Foreign Transaction Fees", Frequency: Ongoing},
		},
	},
	{
		ID: "freedom-unlimited", Name: "Freedom Unlimited", Issuer: "Chase", Network: "Visa",
		AnnualFee: USD(0),
		Color:     "#003087", Gradient: "linear-gradient(135deg, #003087 0%, #004bb5 50%, #0066ff 100%)", AccentColor: "#66a3ff",
		DefaultSelected: true,
		Rates: map[string]CategoryRate{
			"dining":          {Rate: PercentRate(3)},
			"travel_flights":  {Rate: PercentRate(5), Portal: true, PortalNote: "via Chase Travel"},
			"travel_hotels":   {Rate: PercentRate(5), Portal: true, PortalNote: "via Chase Travel"},
			"groceries":       {Rate: PercentRate(1.5)},
			"gas":             {Rate: PercentRate(1.5)},
			"streaming":       {Rate: PercentRate(1.5)},
			"online_shopping": {Rate: PercentRate(1.5)},
			"transit":         {Rate: PercentRate(1.5)},
			"drugstore":       {Rate: PercentRate(3)},
			"general":         {Rate: PercentRate(1.5)},
		},
		Perks: []Perk{
			{ID: "cfu-intro-apr", Name: "0% Intro APR (15 months)", Frequency: OneTime, Description: "On purchases and balance transfers"},
			{ID: "cfu-trifecta", Name: "25% Bonus with Sapphire", Frequency: Ongoing, Description: "Points worth more via Chase trifecta"},
			{ID: "cfu-doordash", Name: "DoorDash DashPass (1 year)", Frequency: Annual, Description: "Activate by Dec 2027"},
			{ID: "cfu-purchase", Name: "Purchase Protection", Frequency: Ongoing},
			{ID: "cfu-warranty", Name: "Extended Warranty", Frequency: Ongoing},
		},
	},
	{
		ID: "freedom-flex", Name: "Freedom Flex", Issuer: "Chase", Network: "Mastercard",
		AnnualFee: USD(0),
		Color:     "#003087", Gradient: "linear-gradient(135deg, #002266 0%, #003087 50%, #0044aa 100%)", AccentColor: "#5599ff",
		RotatingCategories: true, RotatingNote: "5% on rotating quarterly categories (activate each quarter)",
		Rates: map[string]CategoryRate{
			"dining":          {Rate: PercentRate(3)},
			"travel_flights":  {Rate: PercentRate(5), Portal: true, PortalNote: "via Chase Travel"},
			"travel_hotels":   {Rate: PercentRate(5), Portal: true, PortalNote: "via Chase Travel"},
			"groceries":       {Rate: PercentRate(1)},
			"gas":             {Rate: PercentRate(1)},
			"streaming":       {Rate: PercentRate(1)},
			"online_shopping": {Rate: PercentRate(1)},
			"transit":         {Rate: PercentRate(1)},
			"drugstore":       {Rate: PercentRate(3)},
			"general":         {Rate: PercentRate(1)},
		},
		Perks: []Perk{
			{ID: "cff-rotating", Name: "5% Rotating Categories", Frequency: Quarterly, Description: "Activate each quarter for 5% back"},
			{ID: "cff-purchase", Name: "Purchase Protection", Frequency: Ongoing},
			{ID: "cff-warranty", Name: "Extended Warranty", Frequency: Ongoing},
		},
	},
	{
		ID: "amex-gold", Name: "Gold Card", Issuer: "American Express", Network: "Amex",
		AnnualFee: USD(250),
		Color:     "#b8860b", Gradient: "linear-gradient(135deg, #d4a017 0%, #b8860b 40%, #8b6914 100%)", AccentColor: "#ffd700",
		Rates: map[string]CategoryRate{
			"dining":          {Rate: PointsRate(4)},
			"travel_flights":  {Rate: PointsRate(3), Note: "Booked directly with airline"},
			"travel_hotels":   {Rate: PointsRate(1)},
			"groceries":       {Rate: PointsRate(4), Note: "US supermarkets, up to $25k/yr"},
			"gas":             {Rate: PointsRate(1)},
			"streaming":       {Rate: PointsRate(1)},
			"online_shopping": {Rate: PointsRate(1)},
			"transit":         {Rate: PointsRate(1)},
			"drugstore":       {Rate: PointsRate(1)},
			"general":         {Rate: PointsRate(1)},
		},
		Perks: []Perk{
			{ID: "ag-dining", Name: "$120 Dining Credit", Value: USD(120), Frequency: Monthly, MonthlyValue: USD(10), Description: "$10/mo at Grubhub, Cheesecake Factory, Goldbelly, etc."},
			{ID: "ag-uber", Name: "$120 Uber Cash", Value: USD(120), Frequency: Monthly, MonthlyValue: USD(10), Description: "$10/month Uber Cash"},
			{ID: "ag-dunkin", Name: "$84 Dunkin' Credit", Value: USD(84), Frequency: Monthly, MonthlyValue: USD(7), Description: "$7/month at Dunkin'"},
		},
	},
	{
		ID: "citi-double-cash", Name: "Double Cash", Issuer: "Citi", Network: "Mastercard",
		AnnualFee: USD(0),
		Color:     "#003b70", Gradient: "linear-gradient(135deg, #003b70 0%, #005299 50%, #0070cc 100%)", AccentColor: "#4da6ff",
		Rates:     flatRates(PercentRate(2)),
		Perks:     []Perk{},
	},
	{
		ID: "ink-business-preferred", Name: "Ink Business Preferred", Issuer: "Chase", Network: "Visa",
		AnnualFee: USD(95),
		Color:     "#1a1a1a", Gradient: "linear-gradient(135deg, #1a1a1a 0%, #333333 50%, #1a1a1a 100%)", AccentColor: "#003087",
		Rates: map[string]CategoryRate{
			"dining":          {Rate: PointsRate(1)},
			"travel_flights":  {Rate: PointsRate(3)},
			"travel_hotels":   {Rate: PointsRate(3)},
			"groceries":       {Rate: PointsRate(1)},
			"gas":             {Rate: PointsRate(1)},
			"streaming":       {Rate: PointsRate(1)},
			"online_shopping": {Rate: PointsRate(3), Note: "Internet, cable, phone"},
			"transit":         {Rate: PointsRate(1)},
			"drugstore":       {Rate: PointsRate(1)},
			"general":         {Rate: PointsRate(1)},
		},
		Perks: []Perk{
			{ID: "ibp-25-bonus", Name: "25% More Value via Chase Travel", Frequency: Ongoing},
			{ID: "ibp-transfer", Name: "Transfer Partners (1:1)", Frequency: Ongoing},
			{ID: "ibp-cell", Name: "Cell Phone Protection", Frequency: Ongoing, Description: "Up to $1,000, $100 deductible"},
			{ID: "ibp-purchase", Name: "Purchase Protection", Frequency: Ongoing},
		},
	},
	{
		ID: "blue-cash-preferred", Name: "Blue Cash Preferred", Issuer: "American Express", Network: "Amex",
		AnnualFee: USD(95),
		Color:     "#006fcf", Gradient: "linear-gradient(135deg, #004b8d 0%, #006fcf 50%, #0091ff 100%)", AccentColor: "#66c2ff",
		Rates: map[string]CategoryRate{
			"dining":          {Rate: PercentRate(1)},
			"travel_flights":  {Rate: PercentRate(1)},
			"travel_hotels":   {Rate: PercentRate(1)},
			"groceries":       {Rate: PercentRate(6), Note: "US supermarkets, up to $6k/yr"},
			"gas":             {Rate: PercentRate(3), Note: "US gas stations"},
			"streaming":       {Rate: PercentRate(6), Note: "Select US streaming"},
			"online_shopping": {Rate: PercentRate(1)},
			"transit":         {Rate: PercentRate(3)},
			"drugstore":       {Rate: PercentRate(1)},
			"general":         {Rate: PercentRate(1)},
		},
		Perks: []Perk{},
	},
	{
		ID: "savor-one", Name: "SavorOne", Issuer: "Capital One", Network: "Visa",
		AnnualFee: USD(0),
		Color:     "#1a1a2e", Gradient: "linear-gradient(135deg, #2d1b4e 0%, #1a1a2e 50%, #0f0f1a 100%)", AccentColor: "#e94560",
		Rates: map[string]CategoryRate{
			"dining":          {Rate: PercentRate(3)},
			"travel_flights":  {Rate: PercentRate(1)},
			"travel_hotels":   {Rate: PercentRate(5), Portal: true, PortalNote: "via Capital One Travel"},
			"groceries":       {Rate: PercentRate(3)},
			"gas":             {Rate: PercentRate(1)},
			"streaming":       {Rate: PercentRate(3)},
			"online_shopping": {Rate: PercentRate(1)},
			"transit":         {Rate: PercentRate(1)},
			"drugstore":       {Rate: PercentRate(1)},
			"general":         {Rate: PercentRate(1)},
		},
		Perks: []Perk{},
	},
	{
		ID: "citi-strata-premier", Name: "Strata Premier", Issuer: "Citi", Network: "Mastercard",
		AnnualFee: USD(95),
		Color:     "#003b70", Gradient: "linear-gradient(135deg, #002244 0%, #003b70 50%, #004f99 100%)", AccentColor: "#66b3ff",
		Rates: map[string]CategoryRate{
			"dining":          {Rate: PointsRate(3)},
			"travel_flights":  {Rate: PointsRate(3)},
			"travel_hotels":   {Rate: PointsRate(3)},
			"groceries":       {Rate: PointsRate(3)},
			"gas":             {Rate: PointsRate(3)},
			"streaming":       {Rate: PointsRate(1)},
			"online_shopping": {Rate: PointsRate(1)},
			"transit":         {Rate: PointsRate(1)},
			"drugstore":       {Rate: PointsRate(1)},
			"general":         {Rate: PointsRate(1)},
		},
		Perks: []Perk{
			{ID: "csp2-hotel", Name: "$100 Annual Hotel Credit", Value: USD(100), Frequency: Annual, Description: "Via thankyou.com"},
		},
	},
	{
		ID: "altitude-reserve", Name: "Altitude Reserve", Issuer: "U.S. Bank", Network: "Visa",
		AnnualFee: USD(400),
		Color:     "#7b2d8e", Gradient: "linear-gradient(135deg, #5c1a6e 0%, #7b2d8e 50%, #9b45b0 100%)", AccentColor: "#c77ddb",
		Rates: map[string]CategoryRate{
			"dining":          {Rate: PointsRate(3), Note: "Mobile wallet only"},
			"travel_flights":  {Rate: PointsRate(3)},
			"travel_hotels":   {Rate: PointsRate(3)},
			"groceries":       {Rate: PointsRate(3), Note: "Mobile wallet only"},
			"gas":             {Rate: PointsRate(3), Note: "Mobile wallet only"},
			"streaming":       {Rate: PointsRate(3), Note: "Mobile wallet only"},
			"online_shopping": {Rate: PointsRate(1)},
			"transit":         {Rate: PointsRate(3)},
			"drugstore":       {Rate: PointsRate(3), Note: "Mobile wallet only"},
			"general":         {Rate: PointsRate(1)},
		},
		Perks: []Perk{
			{ID: "ar-travel-credit", Name: "$325 Annual Travel Credit", Value: USD(325), Frequency: Annual},
			{ID: "ar-priority-pass", Name: "Priority Pass Lounge Access", Frequency: Ongoing},
			{ID: "ar-global-entry", Name: "Global Entry / TSA PreCheck Credit", Value: USD(100), Frequency: Quadrennial},
		},
	},
	{
		ID: "active-cash", Name: "Active Cash", Issuer: "Wells Fargo", Network: "Visa",
		AnnualFee: USD(0),
		Color:     "#cd1409", Gradient: "linear-gradient(135deg, #8b0000 0%, #cd1409 50%, #e63e36 100%)", AccentColor: "#ff6b63",
		Rates:     flatRates(PercentRate(2)),
		Perks: []Perk{
			{ID: "wac-cell", Name: "Cell Phone Protection", Frequency: Ongoing, Description: "Up to $600, $25 deductible"},
		},
	},
	{
		ID: "discover-it", Name: "it Cash Back", Issuer: "Discover", Network: "Discover",
		AnnualFee: USD(0),
		Color:     "#ff6000", Gradient: "linear-gradient(135deg, #cc4d00 0%, #ff6000 50%, #ff8533 100%)", AccentColor: "#ffb380",
		RotatingCategories: true, RotatingNote: "5% on rotating quarterly categories (activate each quarter)",
		Rates: flatRates(PercentRate(1)),
		Perks: []Perk{
			{ID: "di-match", Name: "First-Year Cash Back Match", Frequency: OneTime, Description: "Discover matches all cash back earned in year one"},
			{ID: "di-rotating", Name: "5% Rotating Categories", Frequency: Quarterly, Description: "Activate each quarter"},
		},
	},
}

// flatRates builds a rate map where every category earns the same flat rate.
func flatRates(r Rate) map[string]CategoryRate {
	m := make(map[string]CategoryRate, len(categories))
	for _, c := range categories {
		m[c.ID] = CategoryRate{Rate: r}
	}
	return m
}

// Cards returns the full card catalog in browse order.
func Cards() []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}

// CardByID returns the catalog card with the given id.
func CardByID(id string) (Card, bool) {
	for _, c := range cards {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// PerkByID returns a perk and its owning card; perk ids are unique across the
// whole catalog.
func PerkByID(id string) (Perk, Card, bool) {
	for _, c := range cards {
		if p, ok := c.Perk(id); ok {
			return p, c, true
		}
	}
	return Perk{}, Card{}, false
}

// Issuers returns the distinct card issuers in catalog order.
func Issuers() []string {
	var out []string
	seen := make(map[string]bool)
	for _, c := range cards {
		if !seen[c.Issuer] {
			seen[c.Issuer] = true
			out = append(out, c.Issuer)
		}
	}
	return out
}

// FilterNoFee is the browse filter selecting cards without an annual fee.
const FilterNoFee = "no-fee"

// FilterCards returns the catalog cards matching a browse filter ("all",
// FilterNoFee, or an issuer name) and a free-text search on name and issuer.
func FilterCards(filter, search string) []Card {
	var out []Card
	q := strings.ToLower(strings.TrimSpace(search))
	for _, c := range cards {
		switch {
		case filter == "" || filter == "all":
		case filter == FilterNoFee:
			if !c.AnnualFee.IsZero() {
				continue
			}
		default:
			if c.Issuer != filter {
				continue
			}
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.Issuer), q) {
			continue
		}
		out = append(out, c)
	}
	return out
}
