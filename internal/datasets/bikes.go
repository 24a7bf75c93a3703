// Package datasets holds the fixed statistical tables shown on the dashboard:
// Seoul public bike (Ttareungi) usage and foreign visitor arrivals.
//
// Every table is returned by a function that builds a fresh value, so callers
// may modify what they receive without affecting other pages.
package datasets

import "time"

// Station labels use the "<id>. <name>" form of the bike share operator.
const (
	StationYeouinaru     = "207. Yeouinaru Stn. Exit 1"
	StationTtukseom      = "502. Ttukseom Resort Stn. Exit 1"
	StationJayang        = "502. Jayang (Ttukseom Hangang Park) Stn. Exit 1"
	StationHanshin       = "2262. Hanshin 16th Apt. Bldg. 119"
	StationHongik        = "3010. Hongik Univ. Stn. Exit 3"
	StationDangsan       = "272. Dangsan Floodgate"
	StationMangwon       = "4217. Hangang Park Mangwon Gate"
	StationSeoulForest   = "3515. Seoul Forest Management Office"
	StationYeouidoMiddle = "249. Yeouido Middle School"
	StationDongdaemun    = "474. DDP Stn. Exit 1 (rear)"
	StationLGTwin        = "5870. LG Twin Towers"
	StationAcroRiver     = "2217. Acro River View Site"
	StationForestParking = "3552. Seoul Forest Public Parking"
	StationGyeongbokgung = "302. Gyeongbokgung Stn. Exit 6 (rear)"
	StationDanginri      = "4244. Danginri Power Plant Park"
	StationBanpo         = "2525. Banpo Shopping Town Bldg. 2"
	StationSeongdong     = "3559. Seongdong Sports Center"
)

// YearValue is a yearly total.
type YearValue struct {
	Year  int
	Value float64
}

// ForeignAnnualRentals returns yearly rentals by foreign visitors.
func ForeignAnnualRentals() []YearValue {
	return []YearValue{
		{2021, 19049},
		{2022, 50761},
		{2023, 64342},
		{2024, 71077},
	}
}

// MonthlyYears lists the years covered by ForeignMonthlyRentals.
func MonthlyYears() []int {
	return []int{2022, 2023, 2024}
}

// ForeignMonthlyRentals returns foreign rentals per calendar month of year,
// January first. ok is false for years without monthly data.
func ForeignMonthlyRentals(year int) (counts []float64, ok bool) {
	switch year {
	case 2022:
		return []float64{518, 566, 1570, 4838, 6350, 5735, 5640, 4198, 7278, 7154, 5981, 933}, true
	case 2023:
		return []float64{502, 783, 2473, 3775, 5325, 9562, 6392, 6560, 9621, 11592, 5689, 2068}, true
	case 2024:
		return []float64{1403, 2043, 5959, 10403, 9390, 10103, 6602, 5091, 7271, 7108, 4296, 1408}, true
	}
	return nil, false
}

// Weekday numbers days Monday first so that a week is strictly increasing.
type Weekday int

// Days of the week, Monday first.
const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Weekdays returns every day of the week, Monday first.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// IsWeekend reports whether d falls on Saturday or Sunday.
func (d Weekday) IsWeekend() bool {
	return d == Saturday || d == Sunday
}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return "Weekday(?)"
	}
	return time.Weekday(int(d) % 7).String()
}

// ForeignWeekdayRentals returns foreign rentals per weekday of year, Monday
// first. ok is false for years without weekday data.
func ForeignWeekdayRentals(year int) (counts []float64, ok bool) {
	table := map[int][]float64{
		2022: {6156, 6343, 6207, 5973, 7252, 9502, 9328},
		2023: {9297, 8039, 7600, 7621, 9208, 10686, 11891},
		2024: {9654, 8637, 8930, 9208, 9995, 11758, 12895},
	}
	counts, ok = table[year]
	return counts, ok
}

// RiderSplit is the yearly rental count split between general and foreign riders.
type RiderSplit struct {
	Year    int
	General float64
	Foreign float64
}

// RiderSplits returns general versus foreign rentals for 2022–2024.
func RiderSplits() []RiderSplit {
	return []RiderSplit{
		{2022, 40950756, 50761},
		{2023, 44904665, 64342},
		{2024, 43849559, 71077},
	}
}

// StationCount is a station together with a rental count.
type StationCount struct {
	Station string
	Count   float64
}

// TopStationYears lists the years covered by ForeignTopStations.
func TopStationYears() []int {
	return []int{2021, 2022, 2023, 2024}
}

// ForeignTopStations returns the five stations foreign riders rented from
// most in year, busiest first.
func ForeignTopStations(year int) ([]StationCount, bool) {
	switch year {
	case 2021:
		return []StationCount{
			{StationYeouinaru, 587},
			{StationTtukseom, 290},
			{StationHanshin, 215},
			{StationHongik, 183},
			{StationDangsan, 179},
		}, true
	case 2022:
		return []StationCount{
			{StationYeouinaru, 1823},
			{StationTtukseom, 666},
			{StationMangwon, 661},
			{StationSeoulForest, 562},
			{StationHanshin, 559},
		}, true
	case 2023:
		return []StationCount{
			{StationYeouinaru, 2236},
			{StationSeoulForest, 922},
			{StationHanshin, 850},
			{StationYeouidoMiddle, 724},
			{StationTtukseom, 724},
		}, true
	case 2024:
		return []StationCount{
			{StationYeouinaru, 1990},
			{StationMangwon, 1114},
			{StationSeoulForest, 1109},
			{StationJayang, 857},
			{StationDongdaemun, 651},
		}, true
	}
	return nil, false
}

// StationGrowth holds foreign rentals for the stations that grew the most
// between two years. A station absent from a year is simply not listed for it.
type StationGrowth struct {
	BaselineYear int
	CurrentYear  int
	Baseline     []StationCount
	Current      []StationCount
}

// StationGrowthPeriod returns the 2023 to 2024 station growth data.
func StationGrowthPeriod() StationGrowth {
	return StationGrowth{
		BaselineYear: 2023,
		CurrentYear:  2024,
		Baseline: []StationCount{
			{StationMangwon, 724},
			{StationLGTwin, 265},
			{StationAcroRiver, 134},
			{StationForestParking, 373},
			{StationSeoulForest, 922},
			{StationDanginri, 160},
			{StationBanpo, 448},
			{StationSeongdong, 216},
		},
		Current: []StationCount{
			{StationJayang, 857},
			{StationMangwon, 1114},
			{StationLGTwin, 499},
			{StationAcroRiver, 365},
			{StationForestParking, 582},
			{StationGyeongbokgung, 190},
			{StationSeoulForest, 1109},
			{StationDanginri, 313},
			{StationBanpo, 596},
			{StationSeongdong, 356},
		},
	}
}

// RentalReturnTop5 returns the 2024 top five stations by foreign rentals and
// by foreign returns, busiest first.
func RentalReturnTop5() (rental, ret []string) {
	rental = []string{StationYeouinaru, StationMangwon, StationSeoulForest, StationJayang, StationDongdaemun}
	ret = []string{StationYeouinaru, StationMangwon, StationJayang, StationBanpo, StationSeoulForest}
	return rental, ret
}

// StationReturn summarizes six months of trips starting at one station across
// all riders, with the percentage returned to the same station.
type StationReturn struct {
	ID             string
	Station        string
	Trips          float64
	SameStationPct float64
}

// AllRiderStationReturns returns the same-station return figures for the five
// stations most used by foreign riders in 2024.
func AllRiderStationReturns() []StationReturn {
	return []StationReturn{
		{"207", StationYeouinaru, 50175, 21.4},
		{"4217", StationMangwon, 73751, 25.4},
		{"3515", StationSeoulForest, 15745, 35.1},
		{"502", StationJayang, 73157, 22.7},
		{"474", StationDongdaemun, 13947, 7.9},
	}
}
