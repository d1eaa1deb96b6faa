package model

// CrawlThemes is the built-in theme catalog.
var CrawlThemes = []CrawlTheme{
	{
		ThemeID:     "cheap-cheerful",
		Name:        "Cheap & Cheerful",
		Description: "Low-budget gems, fast bites, and casual fun throughout the city.",
		StageFlow:   []string{"coffee", "market", "random gem", "gallery", "dinner", "bar"},
		Filters: ThemeFilters{
			Price:     []int{1, 2},
			Vibes:     []string{"diner", "cheap", "budget", "street", "casual", "$", "bite", "fast", "local", "market", "takeout", "gallery", "food truck"},
			Tags:      []string{"coffee", "market", "random gem", "gallery", "dinner", "bar"},
			TimeOfDay: []string{"day", "evening"},
		},
		Keywords: []string{"diner", "cheap", "budget", "street", "casual", "$", "bite", "fast", "local", "market", "takeout", "gallery", "food truck"},
	},
	{
		ThemeID:     "chill-hang",
		Name:        "Chill Hang",
		Description: "Coffee, books, bites, easy vibes, and a nightcap.",
		StageFlow:   []string{"coffee", "bookstore", "random gem", "lunch", "lifestyle", "bar", "dessert"},
		Filters: ThemeFilters{
			Price:     []int{1, 2, 3},
			Vibes:     []string{"lounge", "cozy", "relaxed", "intimate", "chill", "sofa", "vintage", "casual", "warm", "neighborhood", "laid-back", "friendly", "comfort", "easygoing", "snack", "small bite", "lowkey", "hangout", "easy", "slow", "conversation", "quiet"},
			Tags:      []string{"coffee", "bookstore", "random gem", "lunch", "lifestyle", "bar", "dessert"},
			TimeOfDay: []string{"day", "evening"},
		},
		Keywords: []string{"lounge", "cozy", "relaxed", "intimate", "chill", "sofa", "vintage", "casual", "warm", "neighborhood", "laid-back", "friendly", "comfort", "easygoing", "snack", "small bite", "lowkey", "hangout", "easy", "slow", "conversation", "quiet"},
	},
	{
		ThemeID:     "creative-kickstart",
		Name:        "Creative Kickstart",
		Description: "Inspiration stops to fuel the imagination.",
		StageFlow:   []string{"coffee", "gallery", "random gem", "bookstore", "lunch"},
		Filters: ThemeFilters{
			Price:     []int{1, 2, 3},
			Tags:      []string{"coffee", "gallery", "random gem", "bookstore", "lunch"},
			Vibes:     []string{"studio", "journal", "sketch", "gallery", "quiet", "inspiration", "café", "bookstore", "sunny", "vinyl", "art", "notebook", "design", "creative space", "makers"},
			TimeOfDay: []string{"morning", "day"},
		},
		Keywords: []string{"studio", "journal", "sketch", "gallery", "quiet", "inspiration", "café", "bookstore", "sunny", "vinyl", "art", "notebook", "design", "creative space", "makers"},
	},
	{
		ThemeID:     "date-night",
		Name:        "Date Night",
		Description: "Romance, dim lights, and dessert to close the evening.",
		StageFlow:   []string{"dinner", "cocktail", "dessert"},
		Filters: ThemeFilters{
			Price:     []int{2, 3, 4},
			Vibes:     []string{"romantic", "date spot", "cocktail", "jazz", "twilight", "vibe", "wine", "dim", "moody", "candlelit", "intimate", "charming", "slow-paced", "flirty", "cozy", "soft", "sweet", "elegant", "lush", "quiet", "dreamy", "gentle", "classic"},
			Tags:      []string{"dinner", "cocktail", "dessert", "wine bar"},
			TimeOfDay: []string{"evening", "night"},
		},
		Keywords: []string{"romantic", "date spot", "cocktail", "jazz", "twilight", "vibe", "wine", "dim", "moody", "candlelit", "intimate", "charming", "slow-paced", "flirty", "cozy", "soft", "sweet", "elegant", "lush", "quiet", "dreamy", "gentle", "classic"},
	},
	{
		ThemeID:     "friends-night-out",
		Name:        "Friends Night Out",
		Description: "Food, pregame, party, questionable decisions.",
		StageFlow:   []string{"dinner", "bar", "bar", "club", "late-night"},
		Filters: ThemeFilters{
			Price:     []int{1, 2, 3},
			Vibes:     []string{"loud", "shareable", "pitchers", "group dinner", "crowded", "bar", "dinner", "club", "dj", "party", "scene", "drinks", "late-night", "social", "vibrant", "group", "shots", "energy", "rowdy", "dance", "hype", "weekend", "pregame", "cheers", "lit"},
			Tags:      []string{"dinner", "bar", "bar", "club", "late-night"},
			TimeOfDay: []string{"night", "late-night"},
		},
		Keywords: []string{"loud", "shareable", "pitchers", "group dinner", "crowded", "bar", "dinner", "club", "dj", "party", "scene", "drinks", "late-night", "social", "vibrant", "group", "shots", "energy", "rowdy", "dance", "hype", "weekend", "pregame", "cheers", "lit"},
	},
	{
		ThemeID:     "gallery-crawl",
		Name:        "Gallery Crawl",
		Description: "Galleries and artsy stops with great aesthetics.",
		StageFlow:   []string{"gallery", "gallery", "lunch", "wine bar", "music"},
		Filters: ThemeFilters{
			Price:     []int{2, 3},
			Vibes:     []string{"gallery", "exhibit", "art", "creative", "museum", "opening", "culture", "fine art", "contemporary", "showcase", "art walk", "curated", "aesthetic", "stylish", "visual", "inspired", "refined", "chic", "trendy", "modern", "buzz"},
			Tags:      []string{"gallery", "gallery", "lunch", "wine bar", "music"},
			TimeOfDay: []string{"day", "evening"},
		},
		Keywords: []string{"gallery", "exhibit", "art", "creative", "museum", "opening", "culture", "fine art", "contemporary", "showcase", "art walk", "curated", "aesthetic", "stylish", "visual", "inspired", "refined", "chic", "trendy", "modern", "buzz"},
	},
	{
		ThemeID:     "patio-perfection",
		Name:        "Patio Perfection",
		Description: "Outdoor seating, breezy rooftops, and relaxed vibes.",
		StageFlow:   []string{"brunch", "rooftop", "cocktail", "dinner", "dessert"},
		Filters: ThemeFilters{
			Price:     []int{2, 3, 4},
			Vibes:     []string{"patio", "al fresco", "open-air", "sunny", "shade", "breezy", "terrace", "brunchy", "plants", "outdoor", "chill", "garden", "social", "view", "loungy", "relaxed"},
			Tags:      []string{"brunch", "rooftop", "cocktail", "dinner", "dessert"},
			TimeOfDay: []string{"day", "evening"},
		},
		Keywords: []string{"patio", "al fresco", "open-air", "sunny", "shade", "breezy", "terrace", "brunchy", "plants", "outdoor", "chill", "garden", "social", "view", "loungy", "relaxed"},
	},
	{
		ThemeID:     "saturday-surge",
		Name:        "Saturday Surge",
		Description: "Max energy from afternoon to after hours.",
		StageFlow:   []string{"activity", "bar", "dinner", "bar", "club", "late-night"},
		Filters: ThemeFilters{
			Price:     []int{2, 3, 4},
			Vibes:     []string{"dance", "dj", "crowded", "club", "party", "high energy", "beats", "rooftop", "late", "scene", "vibrant", "after hours"},
			Tags:      []string{"activity", "bar", "dinner", "bar", "club", "late-night"},
			TimeOfDay: []string{"evening", "night", "late-night"},
		},
		Keywords: []string{"dance", "dj", "crowded", "club", "party", "high energy", "beats", "rooftop", "late", "scene", "vibrant", "after hours"},
	},
	{
		ThemeID:     "solo-explorer",
		Name:        "Solo Explorer",
		Description: "Cozy solo spots and hidden gems for wandering.",
		StageFlow:   []string{"coffee", "random gem", "bookstore", "market", "park", "rooftop"},
		Filters: ThemeFilters{
			Price:     []int{1, 2},
			Vibes:     []string{"bookstore", "gallery", "quiet", "scenic", "café", "park", "rooftop", "garden", "introspective", "nook", "wander", "hidden spot", "photo walk"},
			Tags:      []string{"coffee", "random gem", "bookstore", "market", "park", "rooftop"},
			TimeOfDay: []string{"day", "evening"},
		},
		Keywords: []string{"bookstore", "gallery", "quiet", "scenic", "café", "park", "rooftop", "garden", "introspective", "nook", "wander", "hidden spot", "photo walk"},
	},
	{
		ThemeID:     "sunset-lovers",
		Name:        "Sunset Lovers",
		Description: "Golden hour to skyline views and cocktails.",
		StageFlow:   []string{"park", "rooftop", "dinner", "cocktail"},
		Filters: ThemeFilters{
			Price:     []int{2, 3, 4},
			Tags:      []string{"park", "rooftop", "dinner", "cocktail"},
			Vibes:     []string{"park", "view", "golden hour", "romantic", "cocktail", "outdoor", "patio", "date", "skyline", "twilight", "serene", "photogenic"},
			TimeOfDay: []string{"evening"},
		},
		Keywords: []string{"park", "view", "golden hour", "romantic", "cocktail", "outdoor", "patio", "date", "skyline", "twilight", "serene", "photogenic"},
	},
	{
		ThemeID:     "sunday-reset",
		Name:        "Sunday Reset",
		Description: "Restore your soul with quiet spaces, gentle wellness, and cozy comfort.",
		StageFlow:   []string{"fitness", "market", "lifestyle", "bookstore", "dinner"},
		Filters: ThemeFilters{
			Price:     []int{1, 2, 3},
			Vibes:     []string{"garden", "tea", "spa", "quiet", "book", "relax", "wellness", "reflection", "meditation", "sunlight", "fresh", "slow"},
			Tags:      []string{"fitness", "market", "lifestyle", "bookstore", "dinner"},
			TimeOfDay: []string{"morning", "day", "evening"},
		},
		Keywords: []string{"garden", "tea", "spa", "quiet", "book", "relax", "wellness", "reflection", "meditation", "sunlight", "fresh", "slow"},
	},
	{
		ThemeID:     "work-session",
		Name:        "Work Session",
		Description: "Power through tasks with caffeine, quiet corners, and a rewarding close.",
		StageFlow:   []string{"coffee", "lunch", "coffee", "cocktail"},
		Filters: ThemeFilters{
			Price:     []int{1, 2, 3},
			Tags:      []string{"coffee", "lunch", "coffee", "cocktail"},
			Vibes:     []string{"cafe", "wifi", "coffee", "focus", "remote-friendly", "laptop", "casual", "quiet", "workspace", "daytime", "study", "productive", "neighborhood", "light music", "comfortable seating"},
			TimeOfDay: []string{"morning", "day"},
		},
		Keywords: []string{"cafe", "wifi", "coffee", "focus", "remote-friendly", "laptop", "casual", "quiet", "workspace", "daytime", "study", "productive", "neighborhood", "light music", "comfortable seating"},
	},
	{
		ThemeID:     "last-call",
		Name:        "Last Call",
		Description: "A wild night that doesn't end when the lights go out.",
		StageFlow:   []string{"bar", "club", "late-night", "speakeasy", "lounge", "after hours"},
		Filters: ThemeFilters{
			TimeOfDay: []string{"night", "late-night"},
			Price:     []int{1, 2, 3},
		},
		Keywords: []string{"late-night", "karaoke", "after hours", "lively", "spontaneous", "gritty", "unfiltered", "nocturnal", "dance", "dark", "shots", "underground", "loose", "unhinged", "boozy", "nightcap"},
	},
	{
		ThemeID:     "mindful-mornings",
		Name:        "Mindful Mornings",
		Description: "Ease into the day with peace, balance, and clarity.",
		StageFlow:   []string{"wellness", "coffee", "garden", "market", "spa"},
		Filters: ThemeFilters{
			TimeOfDay: []string{"morning"},
			Price:     []int{1, 2},
		},
		Keywords: []string{"yoga", "meditation", "spa", "sunlight", "tea", "calm", "minimal", "introspective", "garden", "journal", "wellness", "fresh air", "stretch"},
	},
	{
		ThemeID:     "pages-to-pours",
		Name:        "Pages to Pours",
		Description: "A cozy blend of books, art, and wine-soaked thought.",
		StageFlow:   []string{"bookstore", "coffee", "gallery", "wine bar", "lounge"},
		Filters: ThemeFilters{
			TimeOfDay: []string{"day", "evening"},
			Price:     []int{1, 2, 3},
		},
		Keywords: []string{"bookstore", "quiet", "cozy", "literary", "analog", "warm", "vintage", "library", "indie", "wine", "reflective", "moody", "ink", "writerly", "poetic", "sips"},
	},
	{
		ThemeID:     "party-time",
		Name:        "Party Time",
		Description: "Bring the crew. Tonight, the city is yours.",
		StageFlow:   []string{"bar", "dinner", "bar", "club", "late-night"},
		Filters: ThemeFilters{
			TimeOfDay: []string{"evening", "night"},
			Price:     []int{2, 3, 4},
		},
		Keywords: []string{"club", "dance", "beats", "late", "dj", "loud", "drinks", "bar", "crowded", "energy", "flashy", "after hours", "party", "scene", "friends night out", "rowdy", "weekend", "pregame", "lit", "cheers", "social"},
	},
	{
		ThemeID:     "post-work-wind-down",
		Name:        "Post-Work Wind Down",
		Description: "Unplug and ease into the evening after a long day.",
		StageFlow:   []string{"bar", "dinner", "cocktail", "lounge"},
		Filters: ThemeFilters{
			TimeOfDay: []string{"evening"},
			Price:     []int{1, 2, 3},
		},
		Keywords: []string{"happy hour", "bar", "tapas", "light bite", "craft beer", "after work", "relax", "casual", "patio", "drinks", "mingle", "unwind", "refresh", "lowkey", "cooldown", "ambient", "hangout", "winddown", "ease"},
	},
	{
		ThemeID:     "self-care",
		Name:        "Self-Care",
		Description: "Replenish your energy with serene solo stops.",
		StageFlow:   []string{"fitness", "spa", "tea", "bookstore", "park"},
		Filters: ThemeFilters{
			TimeOfDay: []string{"day"},
			Price:     []int{1, 2, 3},
		},
		Keywords: []string{"spa", "relax", "yoga", "meditation", "serenity", "retreat", "tea", "calm", "detox", "massage", "rejuvenate", "peace"},
	},
	{
		ThemeID:     "sunrise-start",
		Name:        "Sunrise Start",
		Description: "Begin your day grounded and energized.",
		StageFlow:   []string{"fitness", "bakery", "coffee", "market", "park"},
		Filters: ThemeFilters{
			TimeOfDay: []string{"morning"},
			Price:     []int{1, 2},
		},
		Keywords: []string{"coffee", "matcha", "sunrise", "morning", "café", "bakery", "brunch", "acai", "patio", "quiet", "fresh", "early", "energizing", "routine", "mindful", "stretch", "wellness", "cozy", "warm", "comforting", "inviting", "breeze", "peaceful", "slow", "outdoor"},
	},
	{
		ThemeID:     "midday-recharge",
		Name:        "Midday Recharge",
		Description: "A relaxing midday refresh to reset and recharge before the evening.",
		StageFlow:   []string{"coffee", "lunch", "park", "gallery"},
		Filters: ThemeFilters{
			TimeOfDay: []string{"day"},
			Price:     []int{1, 2, 3},
		},
		Keywords: []string{"lunch", "coffee", "café", "juice", "quick bite", "park", "sunlight", "relaxed", "low key", "grab-and-go", "outdoor", "break", "neighborhood", "casual", "breezy", "chill", "easygoing"},
	},
}

var themeIndex = buildThemeIndex()

func buildThemeIndex() map[string]*CrawlTheme {
	idx := make(map[string]*CrawlTheme, len(CrawlThemes))
	for i := range CrawlThemes {
		idx[CrawlThemes[i].ThemeID] = &CrawlThemes[i]
	}
	return idx
}

// ThemeByID looks up a theme from the catalog.
func ThemeByID(id string) (*CrawlTheme, bool) {
	t, ok := themeIndex[id]
	return t, ok
}

// ThemeSummaries lists the catalog for the themes endpoint.
func ThemeSummaries() []ThemeSummary {
	out := make([]ThemeSummary, 0, len(CrawlThemes))
	for i := range CrawlThemes {
		out = append(out, CrawlThemes[i].Summary())
	}
	return out
}
