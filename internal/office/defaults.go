package office

// Defaults returns the built-in fleet roster, used when no offices file
// is configured.
func Defaults() []Office {
	offices := make([]Office, len(defaultOffices))
	copy(offices, defaultOffices)
	return offices
}

var defaultOffices = []Office{
	{
		ID:        "aurora-oh-us",
		Name:      "Headquarters (Aurora)",
		City:      "Aurora, OH",
		Country:   "USA",
		Address:   "1455 Danner Drive, Aurora, OH 44202",
		ImageURL:  "https://lh3.googleusercontent.com/gps-cs-s/AHVAwerslbxwCka-RqyKwLFWjZqoj44SeY963l-HSanLMNZ9No7ZWVlUuEY6EZ3k6NH_XqyhmipPmi4TwDr6t9xfqbiEgqMW2a9-sE21ORnn15CZXIpgeyT2g_qaaYIW-QWQjXte5AEY=s680-w680-h510-rw",
		Latitude:  41.27814,
		Longitude: -81.3289235,
	},
	{
		ID:        "dublin-oh-us",
		Name:      "Dublin (OH)",
		City:      "Dublin, OH",
		Country:   "USA",
		Address:   "4789 Rings Road, Suite 125, Dublin, OH 43017",
		ImageURL:  "https://upload.wikimedia.org/wikipedia/commons/thumb/a/ad/Downtown_Columbus_View_from_Main_St_Bridge_-_edit1.jpg/1280px-Downtown_Columbus_View_from_Main_St_Bridge_-_edit1.jpg",
		Latitude:  40.0849747,
		Longitude: -83.1195808,
	},
	{
		ID:        "holly-springs-nc-us",
		Name:      "Holly Springs",
		City:      "Holly Springs, NC",
		Country:   "USA",
		Address:   "480 Green Oaks Parkway, Holly Springs, NC 27540",
		ImageURL:  "https://upload.wikimedia.org/wikipedia/commons/thumb/e/e7/Raleigh_Skyline.jpg/1280px-Raleigh_Skyline.jpg",
		Latitude:  35.6540509,
		Longitude: -78.8636252,
	},
	{
		ID:        "peachtree-city-ga-us",
		Name:      "Peachtree City",
		City:      "Peachtree City, GA",
		Country:   "USA",
		Address:   "101 World Drive, Suite 225, Peachtree City, GA 30269",
		ImageURL:  "https://upload.wikimedia.org/wikipedia/commons/thumb/c/c8/A2ATL20250614-0721_%28cropped%29.jpg/1280px-A2ATL20250614-0721_%28cropped%29.jpg",
		Latitude:  33.4424235,
		Longitude: -84.5895101,
	},
	{
		ID:        "thousand-oaks-ca-us",
		Name:      "Thousand Oaks",
		City:      "Thousand Oaks, CA",
		Country:   "USA",
		Address:   "2545 W Hillcrest Dr #230, Thousand Oaks, CA 91320",
		ImageURL:  "https://upload.wikimedia.org/wikipedia/commons/thumb/c/c0/Mount-Clef-Ridge-Wildwood-Thousand-Oaks-Mountclef.jpg/960px-Mount-Clef-Ridge-Wildwood-Thousand-Oaks-Mountclef.jpg",
		Latitude:  34.1887369,
		Longitude: -118.9326911,
	},
	{
		ID:        "carlsbad-ca-us",
		Name:      "Carlsbad",
		City:      "Carlsbad, CA",
		Country:   "USA",
		Address:   "902 Wright Place, Suite 120, Carlsbad, CA 92008",
		ImageURL:  "https://upload.wikimedia.org/wikipedia/commons/thumb/7/7b/CarlsbadSignDowntownJune2020.jpeg/960px-CarlsbadSignDowntownJune2020.jpeg",
		Latitude:  33.1212609,
		Longitude: -117.2876333,
	},
	{
		ID:        "houston-tx-us",
		Name:      "Houston",
		City:      "Houston, TX",
		Country:   "USA",
		Address:   "16290 Katy Freeway, Suite 100, Houston, TX 77094",
		ImageURL:  "https://upload.wikimedia.org/wikipedia/commons/thumb/6/62/Downtown_Houston%2C_TX_Skyline_-_2018.jpg/960px-Downtown_Houston%2C_TX_Skyline_-_2018.jpg",
		Latitude:  29.7862752,
		Longitude: -95.6659129,
	},
	{
		ID:        "portage-mi-us",
		Name:      "Portage",
		City:      "Portage, MI",
		Country:   "USA",
		Address:   "950 Trade Centre Way, Suite 320, Portage, MI 49002",
		ImageURL:  "https://upload.wikimedia.org/wikipedia/commons/thumb/7/7c/Kalamazoo.jpg/960px-Kalamazoo.jpg",
		Latitude:  42.2384787,
		Longitude: -85.6007269,
	},
	{
		ID:        "westborough-ma-us",
		Name:      "Westborough",
		City:      "Westborough, MA",
		Country:   "USA",
		Address:   "1700 W Park Dr #260, Westborough, MA 01581",
		ImageURL:  "https://upload.wikimedia.org/wikipedia/commons/thumb/f/f9/Boston_Skyline_%28pano%29_%2819806818856%29.jpg/1280px-Boston_Skyline_%28pano%29_%2819806818856%29.jpg",
		Latitude:  42.2825349,
		Longitude: -71.5711996,
	},
	{
		ID:        "tempe-az-us",
		Name:      "Tempe",
		City:      "Tempe, AZ",
		Country:   "USA",
		Address:   "1205 South Park Lane, Suites 1 & 2, Tempe, AZ 85282",
		ImageURL:  "https://upload.wikimedia.org/wikipedia/commons/thumb/b/b9/Downtown_Phoenix_Aerial_Looking_Northeast.jpg/1280px-Downtown_Phoenix_Aerial_Looking_Northeast.jpg",
		Latitude:  33.415727,
		Longitude: -111.9741555,
	},
	{
		ID:        "san-juan-pr",
		Name:      "San Juan",
		City:      "San Juan",
		Country:   "Puerto Rico",
		Address:   "Plaza 273, 273 Avenida Juan Ponce de Leon, San Juan, PR 00917",
		ImageURL:  "https://upload.wikimedia.org/wikipedia/commons/thumb/9/9d/2013_Old_San_Juan_01.JPG/960px-2013_Old_San_Juan_01.JPG",
		Latitude:  18.424814,
		Longitude: -66.0573823,
	},
	{
		ID:        "oakbrook-terrace-il-us",
		Name:      "Oakbrook Terrace",
		City:      "Oakbrook Terrace, IL",
		Country:   "USA",
		Address:   "1801 S Meyers Road, Suite 250, Oakbrook Terrace, IL 60181",
		ImageURL:  "https://upload.wikimedia.org/wikipedia/commons/thumb/a/aa/Chicago_at_Night_%2828824229986%29.jpg/1280px-Chicago_at_Night_%2828824229986%29.jpg",
		Latitude:  41.8492526,
		Longitude: -87.9908496,
	},
	{
		ID:        "utrecht-nl",
		Name:      "Utrecht",
		City:      "Utrecht",
		Country:   "Netherlands",
		Address:   "Reactorweg 301, 3542 AD Utrecht, Netherlands",
		ImageURL:  "https://upload.wikimedia.org/wikipedia/commons/thumb/1/14/Sol_Lumen.jpg/960px-Sol_Lumen.jpg",
		Latitude:  52.1157087,
		Longitude: 5.0484134,
	},
	{
		ID:        "dublin-ie",
		Name:      "Dublin (Ireland)",
		City:      "Dublin",
		Country:   "Ireland",
		Address:   "Blanchardstown Corporate Park 2, Suite 9, Plaza 256, Blanchardstown, Dublin 15, D15 HH28, Ireland",
		ImageURL:  "https://upload.wikimedia.org/wikipedia/commons/thumb/9/92/Dublin_-_aerial_-_2025-07-07_01.jpg/960px-Dublin_-_aerial_-_2025-07-07_01.jpg",
		Latitude:  53.4122178,
		Longitude: -6.3655951,
	},
	{
		ID:        "tokyo-jp",
		Name:      "Tokyo",
		City:      "Tokyo",
		Country:   "Japan",
		Address:   "3F Suite 150, Kabutocho Daiichi Heiwa Building, 5-1 Nihonbashi Kabuto-cho, Chuo-ku, Tokyo 103-0026, Japan",
		ImageURL:  "https://upload.wikimedia.org/wikipedia/commons/thumb/b/b2/Skyscrapers_of_Shinjuku_2009_January.jpg/960px-Skyscrapers_of_Shinjuku_2009_January.jpg",
		Latitude:  35.6833117,
		Longitude: 139.7791065,
	},
	{
		ID:        "singapore-sg",
		Name:      "Singapore",
		City:      "Singapore",
		Country:   "Singapore",
		Address:   "2 International Business Park #03-27, The Strategy Tower 2, Singapore 609930",
		ImageURL:  "https://upload.wikimedia.org/wikipedia/commons/thumb/1/16/Marina_Bay_Singapore-3499.jpg/960px-Marina_Bay_Singapore-3499.jpg",
		Latitude:  1.3298179,
		Longitude: 103.7473969,
	},
	{
		ID:        "taichung-tw",
		Name:      "Taichung",
		City:      "Taichung",
		Country:   "Taiwan",
		Address:   "10F-1, No. 633, Section 2, Taiwan Blvd., Xitun District, Taichung City 407, Taiwan",
		ImageURL:  "https://commons.wikimedia.org/wiki/Special:FilePath/National%20Taichung%20Theater%202019.jpg",
		Latitude:  24.1581563,
		Longitude: 120.6570006,
	},
}
