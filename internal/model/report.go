package model

// MethodMark records the classification outcome for a single method.
type MethodMark struct {
	Name       string
	Descriptor string
	Marked     bool
	Reason     string // classifier rule that fired, empty when not marked
}

// ClassReport holds the marking results for one processed class document.
type ClassReport struct {
	Document  Path
	ClassName string
	Methods   []MethodMark
}

// MarkedCount returns how many methods were marked in the report.
func (r ClassReport) MarkedCount() int {
	count := 0

	for _, method := range r.Methods {
		if method.Marked {
			count++
		}
	}

	return count
}
