package service

import (
	"sort"
	"strings"
)

// DefaultCountryCode is assumed for city names with no known translation
const DefaultCountryCode = "KR"

// City is a provider-facing city name with its ISO country code
type City struct {
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
}

// CitySearchResult is one autocomplete hit
type CitySearchResult struct {
	KorName     string `json:"korName"`
	EngName     string `json:"engName"`
	CountryCode string `json:"countryCode"`
}

var cityTranslations = map[string]City{
	// Korea
	"서울": {"Seoul", "KR"},
	"부산": {"Busan", "KR"},
	"인천": {"Incheon", "KR"},
	"대구": {"Daegu", "KR"},
	"제주": {"Jeju", "KR"},
	"광주": {"Gwangju", "KR"},
	"대전": {"Daejeon", "KR"},
	"울산": {"Ulsan", "KR"},
	"수원": {"Suwon", "KR"},
	"청주": {"Cheongju", "KR"},
	"강릉": {"Gangneung", "KR"},
	"전주": {"Jeonju", "KR"},

	// Japan
	"도쿄":   {"Tokyo", "JP"},
	"오사카":  {"Osaka", "JP"},
	"교토":   {"Kyoto", "JP"},
	"삿포로":  {"Sapporo", "JP"},
	"나고야":  {"Nagoya", "JP"},
	"요코하마": {"Yokohama", "JP"},
	"히로시마": {"Hiroshima", "JP"},
	"후쿠오카": {"Fukuoka", "JP"},
	"나라":   {"Nara", "JP"},

	// Europe
	"파리":    {"Paris", "FR"},
	"런던":    {"London", "GB"},
	"로마":    {"Rome", "IT"},
	"마드리드":  {"Madrid", "ES"},
	"바르셀로나": {"Barcelona", "ES"},
	"베를린":   {"Berlin", "DE"},
	"암스테르담": {"Amsterdam", "NL"},
	"프라하":   {"Prague", "CZ"},
	"비엔나":   {"Vienna", "AT"},
	"부다페스트": {"Budapest", "HU"},
	"이스탄불":  {"Istanbul", "TR"},
	"아테네":   {"Athens", "GR"},
	"베니스":   {"Venice", "IT"},
	"취리히":   {"Zurich", "CH"},

	// North America
	"뉴욕":     {"New York", "US"},
	"로스앤젤레스": {"Los Angeles", "US"},
	"샌프란시스코": {"San Francisco", "US"},
	"시카고":    {"Chicago", "US"},
	"라스베가스":  {"Las Vegas", "US"},
	"마이애미":   {"Miami", "US"},
	"워싱턴":    {"Washington", "US"},
	"보스턴":    {"Boston", "US"},
	"토론토":    {"Toronto", "CA"},
	"밴쿠버":    {"Vancouver", "CA"},
	"몬트리올":   {"Montreal", "CA"},

	// Asia
	"방콕":     {"Bangkok", "TH"},
	"싱가포르":   {"Singapore", "SG"},
	"베이징":    {"Beijing", "CN"},
	"상하이":    {"Shanghai", "CN"},
	"홍콩":     {"Hong Kong", "HK"},
	"타이페이":   {"Taipei", "TW"},
	"하노이":    {"Hanoi", "VN"},
	"호치민":    {"Ho Chi Minh City", "VN"},
	"쿠알라룸푸르": {"Kuala Lumpur", "MY"},
	"자카르타":   {"Jakarta", "ID"},
	"마닐라":    {"Manila", "PH"},
	"뭄바이":    {"Mumbai", "IN"},
	"델리":     {"Delhi", "IN"},
	"두바이":    {"Dubai", "AE"},

	// Oceania
	"시드니":  {"Sydney", "AU"},
	"멜버른":  {"Melbourne", "AU"},
	"브리즈번": {"Brisbane", "AU"},
	"오클랜드": {"Auckland", "NZ"},
	"웰링턴":  {"Wellington", "NZ"},
}

// TranslateCity maps a Korean city name to the provider's English name.
// Unknown names pass through unchanged with the default country code.
func TranslateCity(name string) City {
	name = strings.TrimSpace(name)
	if city, ok := cityTranslations[name]; ok {
		return city
	}
	return City{Name: name, CountryCode: DefaultCountryCode}
}

// SearchCities finds known cities whose Korean or English name contains
// query. Prefix matches sort first.
func SearchCities(query string, limit int) []CitySearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []CitySearchResult{}
	}
	if limit <= 0 {
		limit = 10
	}

	results := make([]CitySearchResult, 0)
	for kor, city := range cityTranslations {
		if strings.Contains(strings.ToLower(kor), q) || strings.Contains(strings.ToLower(city.Name), q) {
			results = append(results, CitySearchResult{KorName: kor, EngName: city.Name, CountryCode: city.CountryCode})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		pi, pj := hasPrefixFold(results[i], q), hasPrefixFold(results[j], q)
		if pi != pj {
			return pi
		}
		return results[i].KorName < results[j].KorName
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func hasPrefixFold(r CitySearchResult, q string) bool {
	return strings.HasPrefix(strings.ToLower(r.KorName), q) || strings.HasPrefix(strings.ToLower(r.EngName), q)
}
