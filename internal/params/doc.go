// Package params turns caller-supplied override values into property maps.
//
// Overrides come from four places, merged from lowest to highest precedence:
//   - the overrides section of soso.yaml
//   - an env-style overrides file (--overrides-file), parsed with godotenv
//   - --set key=value flags, taken as strings
//   - --set-json key=<json> flags, decoded as JSON values
//
// Later sources win on key collision. Every source yields map[string]any so
// the layers can be combined with Merge.
//
// # Example Usage
//
//	fileValues, err := params.LoadOverridesFile("overrides.env")
//	setValues, err := params.ParseKeyValuePairs([]string{"license=CC-BY-4.0"})
//	jsonValues, err := params.ParseJSONPairs([]string{`provider={"name":"SPDF"}`})
//	overrides := params.Merge(cfg.Overrides, params.Strings(fileValues),
//	    params.Strings(setValues), jsonValues)
package params
