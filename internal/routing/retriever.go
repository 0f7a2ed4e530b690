package routing

import (
	"context"
	"sort"
	"strings"
)

// maxPolicySnippets caps how much policy text is injected into the routing
// prompt.
const maxPolicySnippets = 3

// PolicySnippet is one ranked piece of clinic policy text.
type PolicySnippet struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// PolicyRetriever returns up to n policy snippets relevant to the query,
// most relevant first.
type PolicyRetriever interface {
	Retrieve(ctx context.Context, query string, n int) ([]PolicySnippet, error)
}

// StaticPolicyRetriever scores a fixed snippet set by keyword overlap with
// the query. It stands in for real vector retrieval; ranking quality is not
// the point, exercising the injection path is.
type StaticPolicyRetriever struct {
	snippets []PolicySnippet
}

// NewStaticPolicyRetriever builds a retriever over the given snippets, or
// over the built-in clinic policy set when none are given.
func NewStaticPolicyRetriever(snippets ...PolicySnippet) *StaticPolicyRetriever {
	if len(snippets) == 0 {
		snippets = defaultPolicySnippets
	}
	return &StaticPolicyRetriever{snippets: snippets}
}

// Retrieve ranks snippets by how many query words appear in them. Snippets
// with no overlap are omitted.
func (r *StaticPolicyRetriever) Retrieve(_ context.Context, query string, n int) ([]PolicySnippet, error) {
	if n <= 0 {
		n = maxPolicySnippets
	}
	words := strings.Fields(strings.ToLower(query))

	type scored struct {
		snippet PolicySnippet
		score   int
	}
	var ranked []scored
	for _, sn := range r.snippets {
		text := strings.ToLower(sn.Title + " " + sn.Text)
		score := 0
		for _, w := range words {
			if len(w) < 4 {
				continue
			}
			if strings.Contains(text, w) {
				score++
			}
		}
		if score > 0 {
			ranked = append(ranked, scored{snippet: sn, score: score})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	out := make([]PolicySnippet, len(ranked))
	for i, s := range ranked {
		out[i] = s.snippet
	}
	return out, nil
}

var defaultPolicySnippets = []PolicySnippet{
	{
		ID:    "POL-REFERRAL",
		Title: "Specialist referrals",
		Text:  "Most insurance plans require a referral from the patient's primary care provider before a specialist visit. Referrals stay valid for 90 days.",
	},
	{
		ID:    "POL-NEW-PATIENT",
		Title: "New patients",
		Text:  "New patients can only book with providers whose panel is open. Established patients may continue with their existing provider regardless of panel status.",
	},
	{
		ID:    "POL-EMERGENCY",
		Title: "Emergency symptoms",
		Text:  "Chest pain, trouble breathing, fainting, and stroke symptoms are emergencies. Patients reporting them should be told to call 911, not offered a routine appointment first.",
	},
	{
		ID:    "POL-INSURANCE",
		Title: "Insurance verification",
		Text:  "Coverage, copay, and prior authorization are verified against the patient's policy before booking. Imaging and surgical services commonly need prior authorization.",
	},
	{
		ID:    "POL-FOLLOWUP",
		Title: "Follow-up scheduling",
		Text:  "Clinical protocols set the follow-up interval for a condition. Urgent conditions are seen within a week, routine follow-ups within a month unless the protocol says otherwise.",
	},
}
