package handlers

import (
	"html/template"
	"log/slog"
	"net/http"
)

// The pages are deliberately minimal: navigation, the two credential forms
// and the dashboard shell that loads the nutrition report. The access
// control gate decides who sees what before these handlers run.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}} | NutriDash</title>
</head>
<body>
  <nav><a href="/">NutriDash</a></nav>
  <main>
    <h1>{{.Heading}}</h1>
    {{if eq .Page "home"}}
    <p>Track your nutrition. <a href="/login">Log in</a> or <a href="/register">create an account</a>.</p>
    {{else if eq .Page "login"}}
    <form id="login-form" action="/auth/login" data-json data-next="/dashboard">
      <input type="email" name="email" placeholder="Email" required>
      <input type="password" name="password" placeholder="Password" minlength="6" required>
      <button type="submit">Log in</button>
    </form>
    {{else if eq .Page "register"}}
    <form id="register-form" action="/auth/register" data-json data-next="/login">
      <input type="email" name="email" placeholder="Email" required>
      <input type="password" name="password" placeholder="Password" minlength="6" required>
      <button type="submit">Register</button>
    </form>
    {{else if eq .Page "dashboard"}}
    <section id="nutrition-chart" data-source="/dashboard/nutrition">
      <h2>Daily Nutrient Intake</h2>
    </section>
    <form id="logout-form" action="/auth/logout" data-json data-next="/"><button type="submit">Log out</button></form>
    {{end}}
    <p id="message"></p>
  </main>
  <script>
    // The auth endpoints speak JSON, so forms marked data-json submit
    // their fields as a JSON body instead of a urlencoded post.
    for (const form of document.querySelectorAll('form[data-json]')) {
      form.addEventListener('submit', async (event) => {
        event.preventDefault();
        const response = await fetch(form.action, {
          method: 'POST',
          headers: {'Content-Type': 'application/json'},
          body: JSON.stringify(Object.fromEntries(new FormData(form))),
        });
        const result = await response.json();
        if (result.success) {
          window.location.href = form.dataset.next;
        } else {
          document.getElementById('message').textContent = result.message;
        }
      });
    }
  </script>
</body>
</html>
`))

type pageData struct {
	Page    string
	Title   string
	Heading string
}

type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, pageData{Page: "home", Title: "Welcome", Heading: "Welcome to NutriDash"})
}

func (h *PageHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.render(w, pageData{Page: "login", Title: "Log in", Heading: "Log in"})
}

func (h *PageHandler) Register(w http.ResponseWriter, r *http.Request) {
	h.render(w, pageData{Page: "register", Title: "Register", Heading: "Create an account"})
}

func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, pageData{Page: "dashboard", Title: "Dashboard", Heading: "Your Diet Analysis"})
}

func (h *PageHandler) render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		slog.Error("failed to render page", slog.String("page", data.Page), slog.Any("error", err))
	}
}
