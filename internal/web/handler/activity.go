package handler

import (
	"net/http"

	"github.com/seqplan/seqplan/internal/event"
)

// Activity renders the activity feed page.
func (h *Handler) Activity(w http.ResponseWriter, r *http.Request) {
	filterPlan := r.URL.Query().Get("plan")

	events := recentEvents(h.eventsDir, event.Query{PlanID: filterPlan}, 200)

	_ = views.ExecuteTemplate(w, "activity", activityData{
		Events: events,
		Plan:   filterPlan,
	})
}
