package weather

// mockReadings is the static lookup table backing the dashboard. Values
// are fixed mock data for a handful of Brazilian state capitals.
var mockReadings = map[string]Reading{
	"São Paulo": {
		City:        "São Paulo",
		Temperature: 23,
		Humidity:    65,
		Condition:   "Parcialmente nublado",
		Forecast:    "Chuva à tarde com possibilidade de trovoadas",
		Alerts:      []string{"Possibilidade de chuva forte", "Alerta de vento"},
		HourlyTemp:  []int{20, 21, 22, 23, 24, 25, 24, 23, 22, 21, 20, 19},
		WindSpeed:   15,
		Pressure:    1013,
		Visibility:  8,
		UVIndex:     6,
		FeelsLike:   25,
		Sunrise:     "06:15",
		Sunset:      "18:30",
	},
	"Rio de Janeiro": {
		City:        "Rio de Janeiro",
		Temperature: 28,
		Humidity:    78,
		Condition:   "Ensolarado",
		Forecast:    "Sol durante todo o dia com algumas nuvens",
		Alerts:      []string{},
		HourlyTemp:  []int{25, 26, 27, 28, 29, 30, 29, 28, 27, 26, 25, 24},
		WindSpeed:   12,
		Pressure:    1015,
		Visibility:  10,
		UVIndex:     9,
		FeelsLike:   32,
		Sunrise:     "06:00",
		Sunset:      "18:45",
	},
	"Belo Horizonte": {
		City:        "Belo Horizonte",
		Temperature: 21,
		Humidity:    55,
		Condition:   "Nublado",
		Forecast:    "Tempo estável com nebulosidade variável",
		Alerts:      []string{},
		HourlyTemp:  []int{18, 19, 20, 21, 22, 23, 22, 21, 20, 19, 18, 17},
		WindSpeed:   8,
		Pressure:    1018,
		Visibility:  12,
		UVIndex:     4,
		FeelsLike:   22,
		Sunrise:     "06:20",
		Sunset:      "18:25",
	},
	"Salvador": {
		City:        "Salvador",
		Temperature: 30,
		Humidity:    82,
		Condition:   "Ensolarado com nuvens",
		Forecast:    "Calor com pancadas de chuva isoladas",
		Alerts:      []string{"Alerta de calor intenso"},
		HourlyTemp:  []int{27, 28, 29, 30, 31, 32, 31, 30, 29, 28, 27, 26},
		WindSpeed:   18,
		Pressure:    1012,
		Visibility:  9,
		UVIndex:     11,
		FeelsLike:   35,
		Sunrise:     "05:45",
		Sunset:      "18:15",
	},
	"Brasília": {
		City:        "Brasília",
		Temperature: 25,
		Humidity:    45,
		Condition:   "Céu limpo",
		Forecast:    "Tempo seco e ensolarado",
		Alerts:      []string{"Baixa umidade do ar"},
		HourlyTemp:  []int{22, 23, 24, 25, 26, 27, 26, 25, 24, 23, 22, 21},
		WindSpeed:   10,
		Pressure:    1020,
		Visibility:  15,
		UVIndex:     8,
		FeelsLike:   27,
		Sunrise:     "06:10",
		Sunset:      "18:35",
	},
}
