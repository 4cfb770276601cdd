package core

// LabelApp is the label every generated document and selector carries.
// Its value is always the record name.
const LabelApp = "app"

// AppLabels returns the selector labels for a record.
func AppLabels(name string) map[string]interface{} {
	return map[string]interface{}{LabelApp: name}
}
