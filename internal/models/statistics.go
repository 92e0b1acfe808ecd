package models

// Statistics - производная сводка по коллекции инцидентов. Никогда не сохраняется:
// согласована только со снимком, из которого была вычислена.
type Statistics struct {
	Total             int     `json:"total"`
	Active            int     `json:"active"`
	Recent            int     `json:"recent"`
	Controlled        int     `json:"controlled"`
	Extinguished      int     `json:"extinguished"`
	TotalAffectedArea float64 `json:"totalAffectedArea"`
}
