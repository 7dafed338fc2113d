package handler

import (
	"bytes"
	"html"
	"html/template"
	"net/http"
	"sort"

	"github.com/seqplan/seqplan/internal/event"
	"github.com/seqplan/seqplan/internal/plan"
	"github.com/yuin/goldmark"
)

// Plans renders the plan list page.
func (h *Handler) Plans(w http.ResponseWriter, r *http.Request) {
	phase := r.URL.Query().Get("phase")

	plans, err := h.store.ListMeta(plan.ListFilter{Phase: phase})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	sort.Slice(plans, func(i, j int) bool {
		return plans[i].Updated.After(plans[j].Updated)
	})

	_ = views.ExecuteTemplate(w, "plans", plansData{
		Plans:  plans,
		Phase:  phase,
		Phases: []string{"planning", "review"},
	})
}

// Plan renders the plan detail page.
func (h *Handler) Plan(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	p, err := h.store.Get(id)
	if err != nil {
		http.Error(w, "Plan not found", http.StatusNotFound)
		return
	}

	// Render markdown body to HTML.
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(p.Body), &buf); err != nil {
		// Fall back to the raw body on render error.
		buf.Reset()
		buf.WriteString("<pre>" + html.EscapeString(p.Body) + "</pre>")
	}

	events := recentEvents(h.eventsDir, event.Query{PlanID: p.ID}, 50)
	sessions, _ := event.SessionsForPlan(h.eventsDir, p.ID)

	_ = views.ExecuteTemplate(w, "plan", planData{
		Plan:     p,
		BodyHTML: template.HTML(buf.String()),
		Events:   events,
		Sessions: sessions,
	})
}
