package gs1

import "strconv"

// Country is the English short name of a country assigned a GS1 prefix range.
type Country string

// Countries referenced by the prefix registry. UnitedStates and Canada are
// also the unconditional resolution for every UPC code.
const (
	UnitedStates         Country = "United States"
	Canada               Country = "Canada"
	France               Country = "France"
	Monaco               Country = "Monaco"
	Bulgaria             Country = "Bulgaria"
	Slovenia             Country = "Slovenia"
	Croatia              Country = "Croatia"
	BosniaHerzegovina    Country = "Bosnia and Herzegovina"
	Montenegro           Country = "Montenegro"
	Kosovo               Country = "Kosovo"
	Germany              Country = "Germany"
	Japan                Country = "Japan"
	Russia               Country = "Russia"
	Kyrgyzstan           Country = "Kyrgyzstan"
	Taiwan               Country = "Taiwan"
	Estonia              Country = "Estonia"
	Latvia               Country = "Latvia"
	Azerbaijan           Country = "Azerbaijan"
	Lithuania            Country = "Lithuania"
	Uzbekistan           Country = "Uzbekistan"
	SriLanka             Country = "Sri Lanka"
	Philippines          Country = "Philippines"
	Belarus              Country = "Belarus"
	Ukraine              Country = "Ukraine"
	Turkmenistan         Country = "Turkmenistan"
	Moldova              Country = "Moldova"
	Armenia              Country = "Armenia"
	Georgia              Country = "Georgia"
	Kazakhstan           Country = "Kazakhstan"
	Tajikistan           Country = "Tajikistan"
	HongKong             Country = "Hong Kong"
	UnitedKingdom        Country = "United Kingdom"
	Greece               Country = "Greece"
	Lebanon              Country = "Lebanon"
	Cyprus               Country = "Cyprus"
	Albania              Country = "Albania"
	NorthMacedonia       Country = "North Macedonia"
	Malta                Country = "Malta"
	Ireland              Country = "Ireland"
	Belgium              Country = "Belgium"
	Luxembourg           Country = "Luxembourg"
	Portugal             Country = "Portugal"
	Iceland              Country = "Iceland"
	Denmark              Country = "Denmark"
	FaroeIslands         Country = "Faroe Islands"
	Greenland            Country = "Greenland"
	Poland               Country = "Poland"
	Romania              Country = "Romania"
	Hungary              Country = "Hungary"
	SouthAfrica          Country = "South Africa"
	Ghana                Country = "Ghana"
	Senegal              Country = "Senegal"
	Bahrain              Country = "Bahrain"
	Mauritius            Country = "Mauritius"
	Morocco              Country = "Morocco"
	Algeria              Country = "Algeria"
	Nigeria              Country = "Nigeria"
	Kenya                Country = "Kenya"
	IvoryCoast           Country = "Ivory Coast"
	Tunisia              Country = "Tunisia"
	Tanzania             Country = "Tanzania"
	Syria                Country = "Syria"
	Egypt                Country = "Egypt"
	Brunei               Country = "Brunei"
	Libya                Country = "Libya"
	Jordan               Country = "Jordan"
	Iran                 Country = "Iran"
	Kuwait               Country = "Kuwait"
	SaudiArabia          Country = "Saudi Arabia"
	UnitedArabEmirates   Country = "United Arab Emirates"
	Qatar                Country = "Qatar"
	Finland              Country = "Finland"
	China                Country = "China"
	Norway               Country = "Norway"
	Israel               Country = "Israel"
	Sweden               Country = "Sweden"
	Guatemala            Country = "Guatemala"
	ElSalvador           Country = "El Salvador"
	Honduras             Country = "Honduras"
	Nicaragua            Country = "Nicaragua"
	CostaRica            Country = "Costa Rica"
	Panama               Country = "Panama"
	DominicanRepublic    Country = "Dominican Republic"
	Mexico               Country = "Mexico"
	Venezuela            Country = "Venezuela"
	Switzerland          Country = "Switzerland"
	Liechtenstein        Country = "Liechtenstein"
	Colombia             Country = "Colombia"
	Uruguay              Country = "Uruguay"
	Peru                 Country = "Peru"
	Bolivia              Country = "Bolivia"
	Argentina            Country = "Argentina"
	Chile                Country = "Chile"
	Paraguay             Country = "Paraguay"
	Ecuador              Country = "Ecuador"
	Brazil               Country = "Brazil"
	Italy                Country = "Italy"
	SanMarino            Country = "San Marino"
	VaticanCity          Country = "Vatican City"
	Spain                Country = "Spain"
	Andorra              Country = "Andorra"
	Cuba                 Country = "Cuba"
	Slovakia             Country = "Slovakia"
	CzechRepublic        Country = "Czech Republic"
	Serbia               Country = "Serbia"
	Mongolia             Country = "Mongolia"
	NorthKorea           Country = "North Korea"
	Turkey               Country = "Turkey"
	Netherlands          Country = "Netherlands"
	SouthKorea           Country = "South Korea"
	Cambodia             Country = "Cambodia"
	Thailand             Country = "Thailand"
	Singapore            Country = "Singapore"
	India                Country = "India"
	Vietnam              Country = "Vietnam"
	Pakistan             Country = "Pakistan"
	Indonesia            Country = "Indonesia"
	Austria              Country = "Austria"
	Australia            Country = "Australia"
	NewZealand           Country = "New Zealand"
	Malaysia             Country = "Malaysia"
	Macau                Country = "Macau"
)

type prefixRange struct {
	lo, hi    int
	countries []Country
}

// prefixRegistry is the GS1 company prefix list, transcribed from the GS1
// registry. Ranges are disjoint and ordered. Prefixes used for restricted
// circulation, coupons, refund receipts, ISSN, ISBN and GS1 Global Office
// allocations carry no country assignment and are absent.
var prefixRegistry = []prefixRange{
	{0, 19, []Country{UnitedStates}},
	{30, 39, []Country{UnitedStates}},
	{60, 139, []Country{UnitedStates}},
	{300, 379, []Country{France, Monaco}},
	{380, 380, []Country{Bulgaria}},
	{383, 383, []Country{Slovenia}},
	{385, 385, []Country{Croatia}},
	{387, 387, []Country{BosniaHerzegovina}},
	{389, 389, []Country{Montenegro}},
	{390, 390, []Country{Kosovo}},
	{400, 440, []Country{Germany}},
	{450, 459, []Country{Japan}},
	{460, 469, []Country{Russia}},
	{470, 470, []Country{Kyrgyzstan}},
	{471, 471, []Country{Taiwan}},
	{474, 474, []Country{Estonia}},
	{475, 475, []Country{Latvia}},
	{476, 476, []Country{Azerbaijan}},
	{477, 477, []Country{Lithuania}},
	{478, 478, []Country{Uzbekistan}},
	{479, 479, []Country{SriLanka}},
	{480, 480, []Country{Philippines}},
	{481, 481, []Country{Belarus}},
	{482, 482, []Country{Ukraine}},
	{483, 483, []Country{Turkmenistan}},
	{484, 484, []Country{Moldova}},
	{485, 485, []Country{Armenia}},
	{486, 486, []Country{Georgia}},
	{487, 487, []Country{Kazakhstan}},
	{488, 488, []Country{Tajikistan}},
	{489, 489, []Country{HongKong}},
	{490, 499, []Country{Japan}},
	{500, 509, []Country{UnitedKingdom}},
	{520, 521, []Country{Greece}},
	{528, 528, []Country{Lebanon}},
	{529, 529, []Country{Cyprus}},
	{530, 530, []Country{Albania}},
	{531, 531, []Country{NorthMacedonia}},
	{535, 535, []Country{Malta}},
	{539, 539, []Country{Ireland}},
	{540, 549, []Country{Belgium, Luxembourg}},
	{560, 560, []Country{Portugal}},
	{569, 569, []Country{Iceland}},
	{570, 579, []Country{Denmark, FaroeIslands, Greenland}},
	{590, 590, []Country{Poland}},
	{594, 594, []Country{Romania}},
	{599, 599, []Country{Hungary}},
	{600, 601, []Country{SouthAfrica}},
	{603, 603, []Country{Ghana}},
	{604, 604, []Country{Senegal}},
	{608, 608, []Country{Bahrain}},
	{609, 609, []Country{Mauritius}},
	{611, 611, []Country{Morocco}},
	{613, 613, []Country{Algeria}},
	{615, 615, []Country{Nigeria}},
	{616, 616, []Country{Kenya}},
	{618, 618, []Country{IvoryCoast}},
	{619, 619, []Country{Tunisia}},
	{620, 620, []Country{Tanzania}},
	{621, 621, []Country{Syria}},
	{622, 622, []Country{Egypt}},
	{623, 623, []Country{Brunei}},
	{624, 624, []Country{Libya}},
	{625, 625, []Country{Jordan}},
	{626, 626, []Country{Iran}},
	{627, 627, []Country{Kuwait}},
	{628, 628, []Country{SaudiArabia}},
	{629, 629, []Country{UnitedArabEmirates}},
	{630, 630, []Country{Qatar}},
	{640, 649, []Country{Finland}},
	{690, 699, []Country{China}},
	{700, 709, []Country{Norway}},
	{729, 729, []Country{Israel}},
	{730, 739, []Country{Sweden}},
	{740, 740, []Country{Guatemala}},
	{741, 741, []Country{ElSalvador}},
	{742, 742, []Country{Honduras}},
	{743, 743, []Country{Nicaragua}},
	{744, 744, []Country{CostaRica}},
	{745, 745, []Country{Panama}},
	{746, 746, []Country{DominicanRepublic}},
	{750, 750, []Country{Mexico}},
	{754, 755, []Country{Canada}},
	{759, 759, []Country{Venezuela}},
	{760, 769, []Country{Switzerland, Liechtenstein}},
	{770, 771, []Country{Colombia}},
	{773, 773, []Country{Uruguay}},
	{775, 775, []Country{Peru}},
	{777, 777, []Country{Bolivia}},
	{778, 779, []Country{Argentina}},
	{780, 780, []Country{Chile}},
	{784, 784, []Country{Paraguay}},
	{786, 786, []Country{Ecuador}},
	{789, 790, []Country{Brazil}},
	{800, 839, []Country{Italy, SanMarino, VaticanCity}},
	{840, 849, []Country{Spain, Andorra}},
	{850, 850, []Country{Cuba}},
	{858, 858, []Country{Slovakia}},
	{859, 859, []Country{CzechRepublic}},
	{860, 860, []Country{Serbia}},
	{865, 865, []Country{Mongolia}},
	{867, 867, []Country{NorthKorea}},
	{868, 869, []Country{Turkey}},
	{870, 879, []Country{Netherlands}},
	{880, 880, []Country{SouthKorea}},
	{884, 884, []Country{Cambodia}},
	{885, 885, []Country{Thailand}},
	{888, 888, []Country{Singapore}},
	{890, 890, []Country{India}},
	{893, 893, []Country{Vietnam}},
	{896, 896, []Country{Pakistan}},
	{899, 899, []Country{Indonesia}},
	{900, 919, []Country{Austria}},
	{930, 939, []Country{Australia}},
	{940, 949, []Country{NewZealand}},
	{955, 955, []Country{Malaysia}},
	{958, 958, []Country{Macau}},
}

// Countries maps a three-digit GS1 prefix to the countries it is assigned
// to. Prefixes that are not three ASCII digits, or that fall in a range with
// no country assignment, resolve to nil.
func Countries(prefix string) []Country {
	if len(prefix) != 3 {
		return nil
	}
	for i := 0; i < len(prefix); i++ {
		if prefix[i] < '0' || prefix[i] > '9' {
			return nil
		}
	}
	n, _ := strconv.Atoi(prefix)
	for _, r := range prefixRegistry {
		if n >= r.lo && n <= r.hi {
			return r.countries
		}
	}
	return nil
}
