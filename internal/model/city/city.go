package city

// City maps a Chinese city name to its AMap adcode and citycode, used by
// the weather sidebar on the client.
type City struct {
	Name     string `json:"name"`
	AdCode   string `json:"adcode"`
	CityCode string `json:"citycode"`
}

// Seed returns the built-in lookup table.
func Seed() []City {
	return []City{
		{Name: "北京市", AdCode: "110000", CityCode: "010"},
		{Name: "上海市", AdCode: "310000", CityCode: "021"},
		{Name: "天津市", AdCode: "120000", CityCode: "022"},
		{Name: "重庆市", AdCode: "500000", CityCode: "023"},
		{Name: "广州市", AdCode: "440100", CityCode: "020"},
		{Name: "深圳市", AdCode: "440300", CityCode: "0755"},
		{Name: "成都市", AdCode: "510100", CityCode: "028"},
		{Name: "杭州市", AdCode: "330100", CityCode: "0571"},
		{Name: "武汉市", AdCode: "420100", CityCode: "027"},
		{Name: "西安市", AdCode: "610100", CityCode: "029"},
		{Name: "南京市", AdCode: "320100", CityCode: "025"},
		{Name: "长沙市", AdCode: "430100", CityCode: "0731"},
		{Name: "郑州市", AdCode: "410100", CityCode: "0371"},
		{Name: "青岛市", AdCode: "370200", CityCode: "0532"},
		{Name: "昆明市", AdCode: "530100", CityCode: "0871"},
		{Name: "哈尔滨市", AdCode: "230100", CityCode: "0451"},
		{Name: "沈阳市", AdCode: "210100", CityCode: "024"},
		{Name: "苏州市", AdCode: "320500", CityCode: "0512"},
		{Name: "厦门市", AdCode: "350200", CityCode: "0592"},
		{Name: "拉萨市", AdCode: "540100", CityCode: "0891"},
	}
}
