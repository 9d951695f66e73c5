package category

// woeidWorldwide is the placeholder region used for every category without
// a dedicated trend region.
const (
	woeidWorldwide = 1
	woeidKenya     = 23424863
)

// Default returns the built-in category table.
func Default() *Table {
	return NewTable(defaultCategories)
}

var defaultCategories = []Config{
	{
		Name: "Arsenal",
		Feeds: []string{
			"http://feeds.bbci.co.uk/sport/football/teams/arsenal/rss.xml",
			"https://www.theguardian.com/football/arsenal/rss",
			"https://www.skysports.com/rss/0,20514,11670,00.xml",
			"https://arseblog.com/feed/",
		},
		Hashtags:         []string{"#Arsenal", "#COYG", "#PremierLeague", "#Saka", "#Odegaard", "#Saliba", "#Arteta", "#Gunners", "#AFC"},
		TrendKeywords:    []string{"Arsenal", "Gunners", "Arteta", "Saka", "Odegaard", "Saliba", "Nwaneri", "Premier League"},
		FallbackKeywords: []string{"Arsenal FC", "Gunners", "Premier League"},
		EvergreenHooks: []string{
			"Arsenal fans know hope is the deadliest weapon. #COYG",
			"Every Arsenal season is a Shakespeare play: tragedy, comedy, miracle.",
			"Supporting Arsenal should come with free therapy sessions.",
		},
		Prefixes:      []string{"Arsenal news:", "Gunners update:", "Arsenal:"},
		ImageKeywords: []string{"arsenal", "football", "soccer", "gunners"},
		WOEID:         woeidWorldwide,
	},
	{
		Name: "Manchester United",
		Feeds: []string{
			"https://www.manutd.com/rss/news",
			"http://feeds.bbci.co.uk/sport/football/teams/manchester-united/rss.xml",
			"https://www.theguardian.com/football/manchester-united/rss",
			"https://www.skysports.com/rss/0,20514,11667,00.xml",
			"https://www.manchestereveningnews.co.uk/sport/football/manchester-united/rss.xml",
		},
		Hashtags:         []string{"#ManUtd", "#MUFC", "#PremierLeague", "#TenHag", "#Mainoo", "#Rashford", "#Hojlund", "#RedDevils"},
		TrendKeywords:    []string{"Manchester United", "Man Utd", "Ten Hag", "Mainoo", "Rashford", "Hojlund", "Red Devils", "Premier League"},
		FallbackKeywords: []string{"Man Utd", "Red Devils", "Premier League"},
		EvergreenHooks: []string{
			"Man Utd: Where every match is a rollercoaster! #MUFC",
			"Red Devils never give up, even when the odds are grim.",
			"Supporting United is a lifestyle, not just a choice.",
		},
		Prefixes:      []string{"Man Utd news:", "Red Devils update:", "MUFC:"},
		ImageKeywords: []string{"manchester united", "manutd", "football", "red devils"},
		WOEID:         woeidWorldwide,
	},
	{
		Name: "EPL",
		Feeds: []string{
			"https://www.premierleague.com/rss",
			"http://feeds.bbci.co.uk/sport/football/premier-league/rss.xml",
			"https://www.theguardian.com/football/premierleague/rss",
			"https://www.skysports.com/rss/0,20514,11661,00.xml",
			"https://www.football.co.uk/rss/premier-league-news/",
		},
		Hashtags:         []string{"#PremierLeague", "#EPL", "#Football", "#ManCity", "#Liverpool", "#Chelsea", "#Arsenal", "#ManUtd", "#Spurs"},
		TrendKeywords:    []string{"Premier League", "EPL", "Man City", "Liverpool", "Chelsea", "Arsenal", "Tottenham", "Football"},
		FallbackKeywords: []string{"Premier League", "Football", "EPL"},
		EvergreenHooks: []string{
			"Premier League: Where dreams are made and hearts are broken.",
			"EPL weekends hit different. Who's your team?",
			"Football's home is the Premier League. #EPL",
		},
		Prefixes:      []string{"Premier League:", "EPL update:"},
		ImageKeywords: []string{"football", "soccer", "premier", "epl"},
		WOEID:         woeidWorldwide,
	},
	{
		Name: "F1",
		Feeds: []string{
			"https://www.formula1.com/en/latest/all-news.rss",
			"https://www.autosport.com/rss/f1/news/",
			"https://www.motorsport.com/rss/f1/news/",
			"http://feeds.bbci.co.uk/sport/formula1/rss.xml",
		},
		Hashtags:         []string{"#F1", "#Formula1", "#Motorsport", "#Verstappen", "#Hamilton", "#Norris", "#Leclerc", "#McLaren", "#Ferrari", "#RedBull"},
		TrendKeywords:    []string{"Formula 1", "F1", "Verstappen", "Norris", "Hamilton", "Leclerc", "McLaren", "Ferrari"},
		FallbackKeywords: []string{"Formula 1", "Grand Prix", "Motorsport"},
		EvergreenHooks: []string{
			"In F1, speed is everything—except when strategy is slower than dial-up.",
			"Formula 1: where even the safety car has a fanbase.",
			"Drivers chase glory, teams chase sponsors, fans chase sleep schedules.",
		},
		Prefixes:      []string{"F1 news:", "Formula 1:"},
		ImageKeywords: []string{"f1", "racing", "formula", "motorsport"},
		WOEID:         woeidWorldwide,
	},
	{
		Name: "MotoGP",
		Feeds: []string{
			"https://www.motogp.com/en/rss",
			"https://www.motorsport.com/rss/motogp/news/",
			"https://www.autosport.com/rss/motogp/news/",
			"https://www.crash.net/rss/motogp",
			"https://www.the-race.com/rss/motogp/",
		},
		Hashtags:         []string{"#MotoGP", "#MotorcycleRacing", "#Bagnaia", "#Marquez", "#Quartararo", "#VR46", "#GrandPrix"},
		TrendKeywords:    []string{"MotoGP", "Bagnaia", "Marquez", "Quartararo", "Grand Prix", "Motorcycle Racing", "VR46"},
		FallbackKeywords: []string{"MotoGP", "Grand Prix", "Motorcycle Racing"},
		EvergreenHooks: []string{
			"MotoGP: Two wheels, one wild ride! 🏍️",
			"Speed, skill, and spills—MotoGP has it all.",
			"Who's your pick for the next Grand Prix?",
		},
		Prefixes:      []string{"MotoGP news:", "Grand Prix update:"},
		ImageKeywords: []string{"motogp", "motorcycle", "racing", "grand prix"},
		WOEID:         woeidWorldwide,
	},
	{
		Name: "Kenyan Politics",
		Feeds: []string{
			"https://www.standardmedia.co.ke/rss/politics.php",
			"https://nation.africa/kenya/rss/politics",
			"https://www.theeastafrican.co.ke/rss",
			"https://allafrica.com/tools/headlines/rss/kenya/headlines.rdf",
		},
		Hashtags:         []string{"#Kenya", "#KenyaPolitics", "#Ruto", "#Gachagua", "#Raila", "#Azimio", "#UDA", "#AfricaPolitics"},
		TrendKeywords:    []string{"Kenya", "Ruto", "Raila", "Gachagua", "UDA", "Azimio", "Nairobi", "Elections"},
		FallbackKeywords: []string{"Kenya", "Nairobi", "Politics"},
		EvergreenHooks: []string{
			"Kenya's political scene: Never a dull moment! 🇰🇪",
			"From Nairobi to the nation, politics shapes Kenya's future.",
			"Stay woke, Kenya's political drama never sleeps.",
		},
		Prefixes:      []string{"Kenya:", "Politics news:"},
		ImageKeywords: []string{"kenya", "politics", "nairobi", "africa"},
		WOEID:         woeidKenya,
	},
	{
		Name: "Kenyan Tourism",
		Feeds: []string{
			"https://www.standardmedia.co.ke/rss/travel.php",
			"https://nation.africa/kenya/rss/lifestyle",
			"https://www.businessdailyafrica.com/rss.xml",
			"https://allafrica.com/tools/headlines/rss/tourism/headlines.rdf",
			"https://www.kbc.co.ke/feed/",
		},
		Hashtags:         []string{"#MagicalKenya", "#KenyaTravel", "#Safari", "#Nairobi", "#Mombasa", "#KenyaTourism", "#VisitKenya"},
		TrendKeywords:    []string{"Kenya", "Safari", "Nairobi", "Mombasa", "Magical Kenya", "Maasai Mara", "Tourism"},
		FallbackKeywords: []string{"Kenya", "Safari", "Tourism"},
		EvergreenHooks: []string{
			"Kenya: Where safaris meet stunning sunsets. 🌅",
			"Magical Kenya calls—ready for an adventure?",
			"From Maasai Mara to Mombasa, Kenya's beauty shines.",
		},
		Prefixes:      []string{"Kenya travel:", "Safari update:"},
		ImageKeywords: []string{"kenya", "safari", "tourism", "maasai mara"},
		WOEID:         woeidKenya,
	},
	{
		Name: "World Finance",
		Feeds: []string{
			"https://www.reuters.com/arc/outboundfeeds/business/?outputType=xml",
			"https://www.ft.com/rss/home/uk",
			"https://www.cnbc.com/id/100003114/device/rss/rss.html",
			"https://www.wsj.com/rss/",
			"https://feeds.bloomberg.com/markets/news.rss",
		},
		Hashtags:         []string{"#Finance", "#GlobalEconomy", "#Markets", "#Stocks", "#Investing", "#WallStreet", "#Bloomberg", "#Crypto"},
		TrendKeywords:    []string{"Finance", "Markets", "Economy", "Stocks", "Investing", "Wall Street", "Crypto", "Global Economy"},
		FallbackKeywords: []string{"Finance", "Markets", "Economy"},
		EvergreenHooks: []string{
			"Markets move, money talks. What's the next big trend? 📈",
			"Global finance: Where numbers tell epic stories.",
			"From Wall Street to Main Street, the economy never sleeps.",
		},
		Prefixes:      []string{"Markets:", "Finance:"},
		ImageKeywords: []string{"finance", "money", "business", "stocks"},
		WOEID:         woeidWorldwide,
	},
	{
		Name: "Crypto",
		Feeds: []string{
			"https://cointelegraph.com/rss",
			"https://www.coindesk.com/arc/outboundfeeds/rss/",
			"https://coinjournal.net/rss/",
			"https://crypto.news/feed/",
		},
		Hashtags:         []string{"#Cryptocurrency", "#Bitcoin", "#Ethereum", "#Blockchain", "#CryptoNews", "#DeFi", "#Web3", "#BTC"},
		TrendKeywords:    []string{"Cryptocurrency", "Bitcoin", "Ethereum", "Blockchain", "DeFi", "Web3", "NFTs", "BTC"},
		FallbackKeywords: []string{"Cryptocurrency", "Bitcoin", "Blockchain"},
		EvergreenHooks: []string{
			"Crypto: HODL or trade, what's your vibe? ₿",
			"Bitcoin, Ethereum, or DeFi—pick your crypto adventure!",
			"Blockchain's changing the game, one block at a time.",
		},
		Prefixes:      []string{"Crypto news:", "Blockchain update:"},
		ImageKeywords: []string{"crypto", "bitcoin", "blockchain", "ethereum"},
		WOEID:         woeidWorldwide,
	},
	{
		Name: "Cycling",
		Feeds: []string{
			"https://www.cyclingnews.com/rss/",
			"https://www.bikeradar.com/feed/",
			"https://velo.outsideonline.com/feed/",
			"https://road.cc/rss",
		},
		Hashtags:         []string{"#Cycling", "#TourDeFrance", "#ProCycling", "#Vingegaard", "#Pogacar", "#CyclistLife", "#RoadCycling"},
		TrendKeywords:    []string{"Cycling", "Tour de France", "Pogacar", "Vingegaard", "Vuelta", "Giro", "Road cycling"},
		FallbackKeywords: []string{"Cycling", "Tour de France", "Road Cycling"},
		EvergreenHooks: []string{
			"Cycling: Two wheels, endless thrills. 🚴",
			"From Tour de France to local trails, pedal hard!",
			"Who's ready to chase the peloton?",
		},
		Prefixes:      []string{"Cycling news:", "Pro cycling:"},
		ImageKeywords: []string{"cycling", "bike", "tour", "bicycle"},
		WOEID:         woeidWorldwide,
	},
	{
		Name: "Space Exploration",
		Feeds: []string{
			"https://www.nasa.gov/rss/dyn/breaking_news.rss",
			"https://www.esa.int/rss",
			"https://www.space.com/feeds/all",
			"https://spacenews.com/feed/",
			"https://www.astronomy.com/rss-feeds/",
		},
		Hashtags:         []string{"#Space", "#NASA", "#SpaceX", "#Mars", "#MoonMission", "#Astronomy", "#Starlink", "#SpaceExploration"},
		TrendKeywords:    []string{"Space", "NASA", "SpaceX", "Mars", "Moon Mission", "Starlink", "Astronomy"},
		FallbackKeywords: []string{"Space", "NASA", "SpaceX"},
		EvergreenHooks: []string{
			"To the stars and beyond! 🚀 #SpaceExploration",
			"NASA, SpaceX, or ESA—who's winning the space race?",
			"The universe is calling, and we're listening.",
		},
		Prefixes:      []string{"Space news:", "NASA update:"},
		ImageKeywords: []string{"space", "nasa", "spacex", "astronomy"},
		WOEID:         woeidWorldwide,
	},
	{
		Name: "Tesla",
		Feeds: []string{
			"https://electrek.co/feed/",
			"https://insideevs.com/rss/news/",
			"https://www.notateslaapp.com/feed",
			"https://ir.tesla.com/rss",
		},
		Hashtags:         []string{"#Tesla", "#ElonMusk", "#ElectricCars", "#ModelY", "#Cybertruck", "#TeslaNews", "#EV", "#SustainableTransport"},
		TrendKeywords:    []string{"Tesla", "Elon Musk", "Cybertruck", "Model Y", "Electric Vehicles", "EV", "Autonomous Driving"},
		FallbackKeywords: []string{"Tesla", "Electric Vehicles", "Elon Musk"},
		EvergreenHooks: []string{
			"Tesla: Driving the future, one EV at a time. ⚡️",
			"Cybertruck or Model Y—pick your Tesla vibe!",
			"Elon's vision keeps Tesla charging ahead.",
		},
		Prefixes:      []string{"Tesla news:", "EV update:"},
		ImageKeywords: []string{"tesla", "electric car", "cybertruck", "elon musk"},
		WOEID:         woeidWorldwide,
	},
}
