package language

// Language is one entry of the fixed reference catalog.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

// Catalog is the fixed reference list employees pick their spoken
// languages from. Insertion order is display order.
var Catalog = []Language{
	{Code: "fr", Name: "Français", Flag: "🇫🇷"},
	{Code: "en", Name: "English", Flag: "🇬🇧"},
	{Code: "de", Name: "Deutsch", Flag: "🇩🇪"},
	{Code: "es", Name: "Español", Flag: "🇪🇸"},
	{Code: "it", Name: "Italiano", Flag: "🇮🇹"},
	{Code: "pt", Name: "Português", Flag: "🇵🇹"},
	{Code: "nl", Name: "Nederlands", Flag: "🇳🇱"},
	{Code: "pl", Name: "Polski", Flag: "🇵🇱"},
	{Code: "ro", Name: "Română", Flag: "🇷🇴"},
	{Code: "ru", Name: "Русский", Flag: "🇷🇺"},
	{Code: "uk", Name: "Українська", Flag: "🇺🇦"},
	{Code: "tr", Name: "Türkçe", Flag: "🇹🇷"},
	{Code: "ar", Name: "العربية", Flag: "🇸🇦"},
	{Code: "he", Name: "עברית", Flag: "🇮🇱"},
	{Code: "zh", Name: "中文", Flag: "🇨🇳"},
	{Code: "ja", Name: "日本語", Flag: "🇯🇵"},
	{Code: "ko", Name: "한국어", Flag: "🇰🇷"},
	{Code: "hi", Name: "हिन्दी", Flag: "🇮🇳"},
	{Code: "bn", Name: "বাংলা", Flag: "🇧🇩"},
	{Code: "vi", Name: "Tiếng Việt", Flag: "🇻🇳"},
	{Code: "th", Name: "ไทย", Flag: "🇹🇭"},
	{Code: "id", Name: "Bahasa Indonesia", Flag: "🇮🇩"},
	{Code: "ms", Name: "Bahasa Melayu", Flag: "🇲🇾"},
	{Code: "sv", Name: "Svenska", Flag: "🇸🇪"},
	{Code: "no", Name: "Norsk", Flag: "🇳🇴"},
	{Code: "da", Name: "Dansk", Flag: "🇩🇰"},
	{Code: "fi", Name: "Suomi", Flag: "🇫🇮"},
	{Code: "el", Name: "Ελληνικά", Flag: "🇬🇷"},
	{Code: "cs", Name: "Čeština", Flag: "🇨🇿"},
	{Code: "hu", Name: "Magyar", Flag: "🇭🇺"},
}

// Lookup returns the catalog entry for code.
func Lookup(code string) (Language, bool) {
	for _, lang := range Catalog {
		if lang.Code == code {
			return lang, true
		}
	}
	return Language{}, false
}
