package handler

import (
	"html/template"
	"time"

	"github.com/seqplan/seqplan/internal/event"
	"github.com/seqplan/seqplan/internal/plan"
)

// plansData feeds the plan list page.
type plansData struct {
	Plans  []*plan.Plan
	Phase  string
	Phases []string
}

// planData feeds the plan detail page.
type planData struct {
	Plan     *plan.Plan
	BodyHTML template.HTML
	Events   []event.Event
	Sessions []string
}

// activityData feeds the activity feed page.
type activityData struct {
	Events []event.Event
	Plan   string
}

var viewFuncs = template.FuncMap{
	"ts": func(t time.Time) string {
		return t.Local().Format("2006-01-02 15:04")
	},
	"orDash": func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	},
}

var views = template.Must(template.New("views").Funcs(viewFuncs).Parse(`
{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>seqplan</title>
<style>
body { font-family: ui-monospace, monospace; max-width: 64rem; margin: 1.5rem auto; padding: 0 1rem; background: #14161a; color: #d8dce2; }
a { color: #7fb4e6; text-decoration: none; }
a:hover { text-decoration: underline; }
nav a { margin-right: 1rem; }
table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
th, td { text-align: left; padding: 0.3rem 0.8rem 0.3rem 0; border-bottom: 1px solid #2a2e35; }
.verdict-PASS { color: #8fd18f; }
.verdict-PASS_WITH_CONCERNS { color: #e6c87f; }
.verdict-NEEDS_CHANGES { color: #e68f8f; }
.body { background: #1b1e24; padding: 1rem 1.5rem; border-radius: 6px; margin-top: 1rem; }
.muted { color: #7a818c; }
</style>
</head>
<body>
<nav><a href="/">plans</a><a href="/activity">activity</a></nav>
<script>
new EventSource("/events").addEventListener("refresh", () => location.reload());
</script>
{{end}}

{{define "foot"}}</body></html>{{end}}

{{define "plans"}}{{template "head" .}}
<h1>Plans</h1>
<p>
{{range .Phases}}<a href="/?phase={{.}}">{{.}}</a> {{end}}<a href="/">all</a>
</p>
<table>
<tr><th>ID</th><th>Phase</th><th>Step</th><th>Verdict</th><th>Title</th><th>Updated</th></tr>
{{range .Plans}}
<tr>
<td><a href="/plan/{{.ID}}">{{.ID}}</a></td>
<td>{{.Phase}}</td>
<td>{{.Step}}/{{.TotalSteps}}</td>
<td class="verdict-{{.Verdict}}">{{orDash (printf "%s" .Verdict)}}</td>
<td>{{.Title}}</td>
<td class="muted">{{ts .Updated}}</td>
</tr>
{{else}}
<tr><td colspan="6" class="muted">No plans yet. Create one with sp new.</td></tr>
{{end}}
</table>
{{template "foot" .}}{{end}}

{{define "plan"}}{{template "head" .}}
<h1>{{.Plan.Title}} <span class="muted">{{.Plan.ID}}</span></h1>
<p>
phase {{.Plan.Phase}} · step {{.Plan.Step}}/{{.Plan.TotalSteps}}
{{if .Plan.Verdict}} · <span class="verdict-{{.Plan.Verdict}}">{{.Plan.Verdict}}</span>{{end}}
· created {{ts .Plan.Created}} · updated {{ts .Plan.Updated}}
</p>
{{if .Sessions}}<p class="muted">sessions: {{range .Sessions}}{{.}} {{end}}</p>{{end}}
<div class="body">{{.BodyHTML}}</div>
{{if .Events}}
<h2>History</h2>
<table>
{{range .Events}}
<tr><td class="muted">{{ts .TS}}</td><td>{{.Event}}</td><td>{{.Phase}}</td><td>{{.Actor}}</td></tr>
{{end}}
</table>
{{end}}
{{template "foot" .}}{{end}}

{{define "activity"}}{{template "head" .}}
<h1>Activity</h1>
<table>
<tr><th>Time</th><th>Event</th><th>Plan</th><th>Phase</th><th>Actor</th></tr>
{{range .Events}}
<tr>
<td class="muted">{{ts .TS}}</td>
<td>{{.Event}}</td>
<td>{{if .Plan}}<a href="/plan/{{.Plan}}">{{.Plan}}</a>{{else}}-{{end}}</td>
<td>{{orDash .Phase}}</td>
<td>{{orDash .Actor}}</td>
</tr>
{{else}}
<tr><td colspan="5" class="muted">No events recorded.</td></tr>
{{end}}
</table>
{{template "foot" .}}{{end}}
`))
