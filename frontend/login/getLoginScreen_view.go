package login

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func GetLoginScreen(data ScreenData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="login">`+
			`<h1>Admin Login</h1><p class="muted">Sign in to manage the platform</p>`+
			`<form method="POST" action="/login" class="form">`+
			`<div class="field"><label for="email">Email</label>`+
			`<input id="email" name="email" type="email" autocomplete="username" required value="`+templ.EscapeString(data.Email)+`"></div>`+
			`<div class="field"><label for="password">Password</label>`+
			`<input id="password" name="password" type="password" autocomplete="current-password" required></div>`+
			`<button type="submit" class="btn btn-primary">Sign In</button>`+
			`</form></section>`)
		return err
	})
}
