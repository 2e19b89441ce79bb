// Package esrs holds the pure domain rules of the platform: standard
// code normalization, the double-materiality rule, datapoint value
// validation, completion status derivation and the review workflow.
// Everything here is side-effect free and covered by unit tests.
package esrs

// Standard is one of the eleven ESRS topical standards
type Standard struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Standards lists the assessable ESRS standards in presentation order.
// Codes are already in normalized form.
var Standards = []Standard{
	{Code: "ESRS 2", Name: "General Disclosures"},
	{Code: "E1", Name: "Climate Change"},
	{Code: "E2", Name: "Pollution"},
	{Code: "E3", Name: "Water and Marine Resources"},
	{Code: "E4", Name: "Biodiversity and Ecosystems"},
	{Code: "E5", Name: "Resource Use and Circular Economy"},
	{Code: "S1", Name: "Own Workforce"},
	{Code: "S2", Name: "Workers in the Value Chain"},
	{Code: "S3", Name: "Affected Communities"},
	{Code: "S4", Name: "Consumers and End-Users"},
	{Code: "G1", Name: "Business Conduct"},
}

// StandardName returns the topic name for a normalized standard code,
// or the empty string if the code is not part of the catalog above.
func StandardName(code string) string {
	for _, s := range Standards {
		if s.Code == code {
			return s.Name
		}
	}
	return ""
}

// IsKnownStandard reports whether the normalized code is one of the
// eleven assessable standards.
func IsKnownStandard(code string) bool {
	return StandardName(code) != ""
}
