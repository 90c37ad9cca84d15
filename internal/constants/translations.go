package constants

// Language selects one of the two supported UI / calendar text variants.
type Language string

const (
	LanguageJapanese Language = "ja"
	LanguageEnglish  Language = "en"

	// DefaultLanguage applies to empty and unrecognised selectors.
	DefaultLanguage = LanguageJapanese
)

// ParseLanguage maps any selector onto a supported language.
func ParseLanguage(s string) Language {
	switch Language(s) {
	case LanguageJapanese, LanguageEnglish:
		return Language(s)
	default:
		return DefaultLanguage
	}
}

// Toggle returns the other supported language.
func (l Language) Toggle() Language {
	if ParseLanguage(string(l)) == LanguageEnglish {
		return LanguageJapanese
	}
	return LanguageEnglish
}

// Translation holds every user-visible UI string for one language.
type Translation struct {
	Title                  string
	Toggle                 string
	SearchByNumber         string
	SearchByRoute          string
	Placeholder            string
	OriginPlaceholder      string
	DestinationPlaceholder string
	SearchButton           string
	Searching              string
	ErrorNotFound          string
	ErrorFetch             string
	Origin                 string
	Destination            string
	Date                   string
	Duration               string
	Hours                  string
	Minutes                string
	TimeZone               string
	Status                 string
	AddToCalendar          string
	StatusLabels           map[string]string
}

var Translations = map[Language]Translation{
	LanguageJapanese: {
		Title:                  "フライト検索",
		Toggle:                 "English",
		SearchByNumber:         "便名で検索",
		SearchByRoute:          "路線で検索",
		Placeholder:            "便名を入力 (例: JL123)",
		OriginPlaceholder:      "出発地 (例: HND)",
		DestinationPlaceholder: "到着地 (例: ITM)",
		SearchButton:           "検索",
		Searching:              "検索中...",
		ErrorNotFound:          "フライトが見つかりませんでした",
		ErrorFetch:             "フライト情報の取得に失敗しました",
		Origin:                 "出発",
		Destination:            "到着",
		Date:                   "日付",
		Duration:               "所要時間",
		Hours:                  "時間",
		Minutes:                "分",
		TimeZone:               "タイムゾーン",
		Status:                 "状況",
		AddToCalendar:          "タップしてGoogleカレンダーに追加",
		StatusLabels: map[string]string{
			"scheduled": "定刻",
			"active":    "飛行中",
			"landed":    "着陸済み",
			"cancelled": "欠航",
			"incident":  "インシデント",
			"diverted":  "ダイバート",
		},
	},
	LanguageEnglish: {
		Title:                  "Flight Search",
		Toggle:                 "日本語",
		SearchByNumber:         "By flight number",
		SearchByRoute:          "By route",
		Placeholder:            "Enter flight number (e.g. JL123)",
		OriginPlaceholder:      "Origin (e.g. HND)",
		DestinationPlaceholder: "Destination (e.g. ITM)",
		SearchButton:           "Search",
		Searching:              "Searching...",
		ErrorNotFound:          "Flight not found",
		ErrorFetch:             "Failed to fetch flight data",
		Origin:                 "Origin",
		Destination:            "Destination",
		Date:                   "Date",
		Duration:               "Duration",
		Hours:                  "h",
		Minutes:                "m",
		TimeZone:               "Time zone",
		Status:                 "Status",
		AddToCalendar:          "Tap to add to Google Calendar",
		StatusLabels: map[string]string{
			"scheduled": "Scheduled",
			"active":    "In flight",
			"landed":    "Landed",
			"cancelled": "Cancelled",
			"incident":  "Incident",
			"diverted":  "Diverted",
		},
	},
}

// T returns the string table for l, falling back to the default language.
func T(l Language) Translation {
	return Translations[ParseLanguage(string(l))]
}

// StatusLabel translates a provider flight status; unknown values pass through.
func (t Translation) StatusLabel(status string) string {
	if label, ok := t.StatusLabels[status]; ok {
		return label
	}
	return status
}
