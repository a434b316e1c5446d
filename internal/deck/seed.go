package deck

// seedEntries is the built-in dataset used when no saved deck exists.
var seedEntries = []struct {
	disease  string
	symptoms []string
}{
	{
		disease: "Pnuemonic manheimiosis",
		symptoms: []string{
			"manheimia hemolytica",
			"급성",
			"상부호흡기 병변",
			"응고성 괴사",
			"하부호흡기 병변",
			"Fibrinous bronchopneumonia",
		},
	},
	{
		disease: "Hemorrhagic septicemia",
		symptoms: []string{
			"Pasteurella multocida",
			"septicemic pneumonia",
			"하부호흡기 병변",
			"전신",
			"흡인 감염",
			"소화기 감염",
		},
	},
	{
		disease: "Respiratory Histophilosis",
		symptoms: []string{
			"Histophilosis somni",
			"Bronhopneumonia",
			"전신",
			"흡인 감염",
		},
	},
}

// Seed returns a fresh copy of the built-in dataset.
func Seed() *Deck {
	d := New()
	for _, e := range seedEntries {
		d.Set(e.disease, e.symptoms)
	}
	return d
}
