package datasets

// Category is a labeled count.
type Category struct {
	Label string
	Value float64
}

// VisitorsByAge returns foreign visitor arrivals per age group for year.
// Only 2023 and 2024 are available.
func VisitorsByAge(year int) ([]Category, bool) {
	switch year {
	case 2023:
		return []Category{
			{"0-20", 1141274},
			{"21-30", 2789771},
			{"31-40", 2267755},
			{"41-50", 1617046},
			{"51-60", 1349707},
			{"61+", 1110580},
		}, true
	case 2024:
		return []Category{
			{"0-20", 1467487},
			{"21-30", 3966890},
			{"31-40", 3446258},
			{"41-50", 2365782},
			{"51-60", 1957080},
			{"61+", 2024923},
		}, true
	}
	return nil, false
}

// VisitorsByContinent returns foreign visitor arrivals per continent for
// year. Only 2023 and 2024 are available.
func VisitorsByContinent(year int) ([]Category, bool) {
	switch year {
	case 2023:
		return []Category{
			{"Asia", 8401391},
			{"Americas", 1373227},
			{"Europe", 918059},
			{"Oceania", 240864},
			{"Africa", 57253},
			{"Overseas Koreans", 40663},
		}, true
	case 2024:
		return []Category{
			{"Asia", 13113511},
			{"Americas", 1719511},
			{"Europe", 1140953},
			{"Oceania", 289685},
			{"Africa", 70758},
			{"Overseas Koreans", 34989},
		}, true
	}
	return nil, false
}

// GenderYear is the yearly arrival total with its male and female parts.
// Arrivals whose gender was not recorded make up the remainder of Total.
type GenderYear struct {
	Year   int
	Total  float64
	Male   float64
	Female float64
}

// Unrecorded returns the arrivals with no recorded gender.
func (g GenderYear) Unrecorded() float64 {
	return g.Total - g.Male - g.Female
}

// VisitorsByGender returns arrivals by gender for 2017–2024.
func VisitorsByGender() []GenderYear {
	return []GenderYear{
		{2017, 13335758, 5533199, 6806301},
		{2018, 15346879, 6229185, 8195792},
		{2019, 17502756, 6768303, 9695380},
		{2020, 2519118, 978594, 1156517},
		{2021, 967003, 335894, 196694},
		{2022, 3198017, 1403186, 1290033},
		{2023, 11031665, 4233401, 6042732},
		{2024, 16369629, 5979930, 9248490},
	}
}

// VisitorTotals returns total foreign visitor arrivals for 2010–2024.
func VisitorTotals() []YearValue {
	values := []float64{
		8797658, 9794796, 11140028, 12175550, 14201516, 13231651, 17241823,
		13335758, 15346879, 17502756, 2519118, 967003, 3198017, 11031665, 16369629,
	}
	return yearRange(2010, values)
}

// Country names used by VisitorsByCountry.
const (
	CountryJapan = "Japan"
	CountryChina = "China"
	CountryUSA   = "United States"
)

// Countries lists the countries covered by VisitorsByCountry.
func Countries() []string {
	return []string{CountryJapan, CountryChina, CountryUSA}
}

// VisitorsByCountry returns yearly arrivals from country for 2010–2024.
func VisitorsByCountry(country string) ([]YearValue, bool) {
	var values []float64
	switch country {
	case CountryJapan:
		values = []float64{
			3023009, 3289051, 3518792, 2747750, 2280434, 1837782, 2297893,
			2311447, 2948527, 3271706, 430742, 15265, 296867, 2316429, 3224079,
		}
	case CountryChina:
		values = []float64{
			1875157, 2220196, 2836892, 4326869, 6126865, 5984170, 8067722,
			4169353, 4789512, 6023021, 686430, 170215, 227358, 2019424, 4603273,
		}
	case CountryUSA:
		values = []float64{
			652889, 661503, 697866, 722315, 770305, 767613, 866186,
			868881, 967992, 1044038, 220417, 204025, 543648, 1086415, 1320108,
		}
	default:
		return nil, false
	}
	return yearRange(2010, values), true
}

func yearRange(start int, values []float64) []YearValue {
	out := make([]YearValue, len(values))
	for i, v := range values {
		out[i] = YearValue{Year: start + i, Value: v}
	}
	return out
}
