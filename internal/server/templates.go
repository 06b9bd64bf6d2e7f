package server

// pageTemplate renders both the login form and the tracker page, switching
// on whether the session has passed the gate.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Habit Tracker</title>
<style>
body { font-family: sans-serif; max-width: 56rem; margin: 2rem auto; padding: 0 1rem; color: #1f2937; }
h1 { color: #7c3aed; }
.warning { color: #b45309; }
.error { color: #dc2626; }
.message { color: #059669; }
.habit { display: inline-block; margin-right: 1.5rem; }
table { border-collapse: collapse; margin-top: 1rem; }
th, td { border: 1px solid #d1d5db; padding: 0.3rem 0.8rem; text-align: left; }
th { background: #f3f4f6; }
form.inline { display: inline; }
</style>
</head>
<body>
{{- if not .Authenticated}}
<h1>Habit Tracker</h1>
<form method="post" action="/login">
<label>Password <input type="password" name="password" autofocus></label>
<button type="submit">Login</button>
</form>
{{- if .LoginFailed}}
<p class="error">Password incorrect</p>
{{- end}}
{{- else}}
<h1>&#9989; Habit Tracker</h1>
{{- if .Warning}}
<p class="warning">{{.Warning}}</p>
{{- end}}
{{- if .Error}}
<p class="error">{{.Error}}</p>
{{- end}}
{{- if .Message}}
<p class="message">{{.Message}}</p>
{{- end}}
<h2>Today's Habits ({{.Today}})</h2>
{{- if .Checks}}
{{- range .Checks}}
<form class="inline" method="post" action="/toggle">
<input type="hidden" name="date" value="{{$.Today}}">
<input type="hidden" name="habit" value="{{.Habit}}">
<label class="habit">
<input type="checkbox" name="done" onchange="this.form.submit()"{{if .Done}} checked{{end}}>
{{.Habit}}
</label>
</form>
{{- end}}
{{- else}}
<p>No habits added yet. Add some below!</p>
{{- end}}
<h2>Manage Habits</h2>
<form method="post" action="/habits">
<label>Add New Habit <input type="text" name="name"></label>
<button type="submit">Add Habit</button>
</form>
<h2>All Habit Data</h2>
<table>
<tr><th>Date</th>{{range .Habits}}<th>{{.}}</th>{{end}}</tr>
{{- range .Rows}}
<tr><td>{{.Date}}</td>{{range .Values}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</table>
{{- end}}
</body>
</html>
`
