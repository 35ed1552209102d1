package zakat

import (
	"errors"
	"sort"
	"strings"
)

// Kind distinguishes state jurisdictions from federal territories.
type Kind string

const (
	KindState   Kind = "state"
	KindFederal Kind = "federal"
)

// ErrUnknownJurisdiction is returned when a jurisdiction name does not match
// any published threshold. There is deliberately no fallback jurisdiction;
// callers must surface this to the user rather than guess.
var ErrUnknownJurisdiction = errors.New("zakat: unknown jurisdiction")

// Threshold holds the published nisab values for one jurisdiction, in MYR.
type Threshold struct {
	Cash   float64 `json:"cash"`
	Gold   float64 `json:"gold"`
	Silver float64 `json:"silver"`
}

// Jurisdiction is one row of the nisab reference table. Loaded once at init
// and never mutated at runtime.
type Jurisdiction struct {
	Name      string    `json:"name"`
	Kind      Kind      `json:"kind"`
	Threshold Threshold `json:"threshold"`
}

// GoldRatePerGram derives a display-only gold price from the cash threshold.
// It carries no calculation weight; the calculator only reads Threshold.
func (j Jurisdiction) GoldRatePerGram() float64 {
	return j.Threshold.Cash / GoldNisabGrams
}

// Published nisab figures per Malaysian state zakat body. Cash and gold
// thresholds track the 85g gold nisab; silver tracks 595g of silver.
var jurisdictions = []Jurisdiction{
	{Name: "Johor", Kind: KindState, Threshold: Threshold{Cash: 24200, Gold: 24200, Silver: 1450}},
	{Name: "Kedah", Kind: KindState, Threshold: Threshold{Cash: 23800, Gold: 23800, Silver: 1400}},
	{Name: "Kelantan", Kind: KindState, Threshold: Threshold{Cash: 23500, Gold: 23500, Silver: 1380}},
	{Name: "Melaka", Kind: KindState, Threshold: Threshold{Cash: 24000, Gold: 24000, Silver: 1420}},
	{Name: "Negeri Sembilan", Kind: KindState, Threshold: Threshold{Cash: 23900, Gold: 23900, Silver: 1410}},
	{Name: "Pahang", Kind: KindState, Threshold: Threshold{Cash: 23700, Gold: 23700, Silver: 1390}},
	{Name: "Perak", Kind: KindState, Threshold: Threshold{Cash: 24100, Gold: 24100, Silver: 1430}},
	{Name: "Perlis", Kind: KindState, Threshold: Threshold{Cash: 23400, Gold: 23400, Silver: 1370}},
	{Name: "Pulau Pinang", Kind: KindState, Threshold: Threshold{Cash: 24300, Gold: 24300, Silver: 1460}},
	{Name: "Sabah", Kind: KindState, Threshold: Threshold{Cash: 23600, Gold: 23600, Silver: 1385}},
	{Name: "Sarawak", Kind: KindState, Threshold: Threshold{Cash: 23650, Gold: 23650, Silver: 1395}},
	{Name: "Selangor", Kind: KindState, Threshold: Threshold{Cash: 24500, Gold: 24500, Silver: 1480}},
	{Name: "Terengganu", Kind: KindState, Threshold: Threshold{Cash: 23550, Gold: 23550, Silver: 1375}},
	{Name: "Wilayah Persekutuan", Kind: KindFederal, Threshold: Threshold{Cash: 24400, Gold: 24400, Silver: 1470}},
}

var jurisdictionIndex = func() map[string]Jurisdiction {
	idx := make(map[string]Jurisdiction, len(jurisdictions))
	for _, j := range jurisdictions {
		idx[canonicalName(j.Name)] = j
	}
	return idx
}()

func canonicalName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// ResolveJurisdiction looks up the threshold set for a jurisdiction by name.
// Matching is case- and whitespace-insensitive. Unknown names return
// ErrUnknownJurisdiction.
func ResolveJurisdiction(name string) (Jurisdiction, error) {
	j, ok := jurisdictionIndex[canonicalName(name)]
	if !ok {
		return Jurisdiction{}, ErrUnknownJurisdiction
	}
	return j, nil
}

// Jurisdictions returns the full reference table, sorted by name. The slice
// is a copy; callers may not mutate the table.
func Jurisdictions() []Jurisdiction {
	out := make([]Jurisdiction, len(jurisdictions))
	copy(out, jurisdictions)
	sort.Slice(out, func(i, k int) bool { return out[i].Name < out[k].Name })
	return out
}
